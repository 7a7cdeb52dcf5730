// Command initdb creates the snapshot table. One-shot; run once against a
// fresh database.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placarlive/scoreboard/internal/dbconfig"
)

const schema = `
CREATE TABLE IF NOT EXISTS match_snapshots (
    slot       text PRIMARY KEY,
    payload    jsonb NOT NULL,
    updated_at timestamptz NOT NULL DEFAULT now()
);
`

func main() {
	cfg := dbconfig.NewConfigFromEnv()

	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(context.Background(), schema); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("match_snapshots ready in %s\n", cfg.Database)
}
