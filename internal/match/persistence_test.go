package match

import (
	"context"
	"errors"
	"testing"

	"github.com/placarlive/scoreboard/internal/models"
	"github.com/placarlive/scoreboard/internal/snapshot"
)

// failingRepo simulates a dead database. Per the error policy, the
// scoreboard must stay fully functional on top of it.
type failingRepo struct{}

var errDown = errors.New("database unavailable")

func (failingRepo) Save(context.Context, snapshot.Snapshot) error { return errDown }
func (failingRepo) Load(context.Context) (snapshot.Snapshot, error) {
	return snapshot.Snapshot{}, errDown
}
func (failingRepo) Delete(context.Context) error { return errDown }

func TestAppSurvivesDeadPersistence(t *testing.T) {
	app := NewApp(context.Background(), failingRepo{}, newRecordingEmitter(), &fakeSounder{})
	t.Cleanup(app.Stop)

	state := app.State()
	if state.RemainingSec != models.DefaultDurationSec {
		t.Fatalf("remaining = %d, want defaults when load fails", state.RemainingSec)
	}

	// Mutations still commit in memory even though every write fails.
	mustNoErr(t, app.AdjustScore(models.SideOne, models.CategoryQueda, 2))
	mustNoErr(t, app.SetName(models.SideTwo, "Cyborg"))
	app.Reset(context.Background())

	if got := app.State().Competitor2.Name; got != models.DefaultNameTwo {
		t.Fatalf("reset did not apply: name = %q", got)
	}
}

func TestRunningFlagNotRestoredAcrossRestart(t *testing.T) {
	repo := snapshot.NewMemoryRepository()

	first := NewApp(context.Background(), repo, newRecordingEmitter(), &fakeSounder{})
	first.Start()
	if !first.State().Running {
		t.Fatal("not running")
	}
	first.Stop()

	second := NewApp(context.Background(), repo, newRecordingEmitter(), &fakeSounder{})
	if second.State().Running {
		t.Fatal("running flag restored from persistence")
	}
}
