package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sqlc-dev/pqtype"

	"github.com/placarlive/scoreboard/internal/sqlutil"
)

// PostgresRepository stores the snapshot as a single jsonb row keyed by
// slot name.
type PostgresRepository struct {
	db   *sql.DB
	slot string
}

// NewPostgresRepository creates a repository over an open database handle.
// An empty slot name falls back to DefaultSlot.
func NewPostgresRepository(db *sql.DB, slot string) *PostgresRepository {
	if slot == "" {
		slot = DefaultSlot
	}
	return &PostgresRepository{db: db, slot: slot}
}

// queries binds the snapshot statements to a transaction.
type queries struct {
	tx *sql.Tx
}

func newQueries(tx *sql.Tx) *queries {
	return &queries{tx: tx}
}

func (q *queries) upsert(ctx context.Context, slot string, payload pqtype.NullRawMessage) error {
	_, err := q.tx.ExecContext(ctx, `
        INSERT INTO match_snapshots (slot, payload, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (slot) DO UPDATE
        SET payload = EXCLUDED.payload, updated_at = now()
    `, slot, payload)
	return err
}

func (q *queries) delete(ctx context.Context, slot string) error {
	_, err := q.tx.ExecContext(ctx, `DELETE FROM match_snapshots WHERE slot = $1`, slot)
	return err
}

// Save upserts the serialized snapshot into the slot.
func (r *PostgresRepository) Save(ctx context.Context, snap Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	payload := pqtype.NullRawMessage{RawMessage: data, Valid: true}

	err = sqlutil.Run(ctx, r.db, newQueries, func(q *queries) error {
		return q.upsert(ctx, r.slot, payload)
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load reads and decodes the slot. A missing row or an undecodable payload
// both report ErrNoSnapshot; the latter also logs what it found.
func (r *PostgresRepository) Load(ctx context.Context) (Snapshot, error) {
	var payload pqtype.NullRawMessage
	row := r.db.QueryRowContext(ctx,
		`SELECT payload FROM match_snapshots WHERE slot = $1`, r.slot)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, ErrNoSnapshot
		}
		return Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	if !payload.Valid {
		return Snapshot{}, ErrNoSnapshot
	}

	snap, err := Decode(payload.RawMessage)
	if err != nil {
		log.Warn().Err(err).Str("slot", r.slot).Msg("discarding undecodable snapshot")
		return Snapshot{}, ErrNoSnapshot
	}
	return snap, nil
}

// Delete clears the slot.
func (r *PostgresRepository) Delete(ctx context.Context) error {
	err := sqlutil.Run(ctx, r.db, newQueries, func(q *queries) error {
		return q.delete(ctx, r.slot)
	})
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}
