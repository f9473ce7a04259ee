package tasks

import (
	"context"
	"testing"

	"github.com/EzequielOmarArraygada/backoffice/internal/domain"
	"github.com/EzequielOmarArraygada/backoffice/internal/rowstore"
	"github.com/EzequielOmarArraygada/backoffice/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (Service, *rowstore.MemoryStore) {
	t.Helper()
	store := rowstore.NewMemoryStore()
	svc := NewService(store, testutil.NewTestClock(t), DefaultSheetNames())
	return svc, store
}

func startTask(t *testing.T, svc Service, owner, name, label, at string) string {
	t.Helper()
	clock := testutil.NewTestClock(t)
	id, err := svc.Start(context.Background(), StartParams{
		OwnerID:   owner,
		OwnerName: name,
		TaskLabel: label,
		StartedAt: testutil.TS(t, clock, at),
	})
	require.NoError(t, err)
	return id
}

// historyRows returns the History sheet's data rows keyed by canonical
// column order (owner, task, name, label, notes, state, at, type, paused).
func historyRows(t *testing.T, store *rowstore.MemoryStore) [][]string {
	t.Helper()
	rows, err := store.GetAllRows(context.Background(), DefaultHistorySheet)
	require.NoError(t, err)
	if len(rows) < 2 {
		return nil
	}
	return rows[1:]
}

func TestStart_CreatesInProgressTask(t *testing.T) {
	svc, store := setupService(t)
	ctx := context.Background()

	taskID := startTask(t, svc, "u1", "Alice", "Facturas A", "01/01/2024 10:00:00")
	assert.NotEmpty(t, taskID)

	rec, err := svc.FindActiveByOwner(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, taskID, rec.TaskID)
	assert.Equal(t, domain.StateInProgress, rec.State)
	assert.Equal(t, "Alice", rec.OwnerName)
	assert.Equal(t, "Facturas A", rec.TaskLabel)
	assert.Equal(t, "01/01/2024 10:00:00", rec.StartedAt)
	assert.Equal(t, "00:00:00", rec.PausedTotal)
	assert.Equal(t, 2, rec.RowIndex, "first data row sits under the header")

	events := historyRows(t, store)
	require.Len(t, events, 1)
	assert.Equal(t, string(domain.EventStart), events[0][7])
	assert.Equal(t, string(domain.StateInProgress), events[0][5])
}

func TestStart_RejectsSecondActiveSession(t *testing.T) {
	svc, _ := setupService(t)
	clock := testutil.NewTestClock(t)

	startTask(t, svc, "u1", "Alice", "Facturas A", "01/01/2024 10:00:00")

	_, err := svc.Start(context.Background(), StartParams{
		OwnerID:   "u1",
		OwnerName: "Alice",
		TaskLabel: "Reclamos",
		StartedAt: testutil.TS(t, clock, "01/01/2024 10:05:00"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateActiveSession)
}

func TestStart_AllowedAgainAfterFinish(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	clock := testutil.NewTestClock(t)

	first := startTask(t, svc, "u1", "Alice", "Facturas A", "01/01/2024 10:00:00")
	require.NoError(t, svc.Finish(ctx, first, "Alice", testutil.TS(t, clock, "01/01/2024 11:00:00"), nil))

	second := startTask(t, svc, "u1", "Alice", "Reclamos", "01/01/2024 11:05:00")
	assert.NotEqual(t, first, second)

	rec, err := svc.FindActiveByOwner(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, second, rec.TaskID)

	// The finished row is retired but still queryable by ID.
	old, err := svc.FindByTaskID(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, domain.StateFinished, old.State)
}

func TestStart_PausedStillBlocksNewSession(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	clock := testutil.NewTestClock(t)

	id := startTask(t, svc, "u1", "Alice", "Facturas A", "01/01/2024 10:00:00")
	require.NoError(t, svc.Pause(ctx, id, "Alice", testutil.TS(t, clock, "01/01/2024 10:10:00")))

	_, err := svc.Start(ctx, StartParams{
		OwnerID:   "u1",
		OwnerName: "Alice",
		TaskLabel: "Reclamos",
		StartedAt: testutil.TS(t, clock, "01/01/2024 10:15:00"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateActiveSession)
}

func TestStart_ValidatesInput(t *testing.T) {
	svc, _ := setupService(t)
	clock := testutil.NewTestClock(t)
	at := testutil.TS(t, clock, "01/01/2024 10:00:00")

	_, err := svc.Start(context.Background(), StartParams{OwnerName: "Alice", TaskLabel: "X", StartedAt: at})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Start(context.Background(), StartParams{OwnerID: "u1", OwnerName: "Alice", StartedAt: at})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStart_TaskIDsAreUniquePerStart(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	clock := testutil.NewTestClock(t)
	at := testutil.TS(t, clock, "01/01/2024 10:00:00")

	// Same owner, same second: finish each before starting the next.
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		id, err := svc.Start(ctx, StartParams{OwnerID: "u1", OwnerName: "Alice", TaskLabel: "X", StartedAt: at})
		require.NoError(t, err)
		assert.False(t, seen[id], "task id %q repeated", id)
		seen[id] = true
		require.NoError(t, svc.Finish(ctx, id, "Alice", at, nil))
	}
}

func TestPauseResume_AccumulatesPauseTime(t *testing.T) {
	svc, store := setupService(t)
	ctx := context.Background()
	clock := testutil.NewTestClock(t)

	id := startTask(t, svc, "u1", "Alice", "Facturas A", "01/01/2024 10:00:00")

	require.NoError(t, svc.Pause(ctx, id, "Alice", testutil.TS(t, clock, "01/01/2024 10:10:00")))
	rec, err := svc.FindByTaskID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatePaused, rec.State)
	assert.Equal(t, "00:00:00", rec.PausedTotal, "pause itself does not change the total")

	require.NoError(t, svc.Resume(ctx, id, "Alice", testutil.TS(t, clock, "01/01/2024 10:25:00")))
	rec, err = svc.FindByTaskID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StateInProgress, rec.State)
	assert.Equal(t, "00:15:00", rec.PausedTotal)

	// Second cycle accumulates additively.
	require.NoError(t, svc.Pause(ctx, id, "Alice", testutil.TS(t, clock, "01/01/2024 10:40:00")))
	require.NoError(t, svc.Resume(ctx, id, "Alice", testutil.TS(t, clock, "01/01/2024 10:50:30")))
	rec, err = svc.FindByTaskID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "00:25:30", rec.PausedTotal)

	events := historyRows(t, store)
	require.Len(t, events, 5) // Start, Pause, Resume, Pause, Resume
	assert.Equal(t, string(domain.EventPause), events[1][7])
	assert.Equal(t, "00:00:00", events[1][8], "pause event carries the pre-pause total")
	assert.Equal(t, string(domain.EventResume), events[2][7])
	assert.Equal(t, "00:15:00", events[2][8], "resume event carries the updated total")
	assert.Equal(t, "00:25:30", events[4][8])
}

func TestPause_RequiresInProgress(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	clock := testutil.NewTestClock(t)
	at := testutil.TS(t, clock, "01/01/2024 10:10:00")

	id := startTask(t, svc, "u1", "Alice", "Facturas A", "01/01/2024 10:00:00")
	require.NoError(t, svc.Pause(ctx, id, "Alice", at))

	err := svc.Pause(ctx, id, "Alice", at)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	require.NoError(t, svc.Resume(ctx, id, "Alice", testutil.TS(t, clock, "01/01/2024 10:20:00")))
	require.NoError(t, svc.Finish(ctx, id, "Alice", testutil.TS(t, clock, "01/01/2024 11:00:00"), nil))

	err = svc.Pause(ctx, id, "Alice", at)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestResume_RequiresPaused(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	clock := testutil.NewTestClock(t)
	at := testutil.TS(t, clock, "01/01/2024 10:10:00")

	id := startTask(t, svc, "u1", "Alice", "Facturas A", "01/01/2024 10:00:00")

	err := svc.Resume(ctx, id, "Alice", at)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	err = svc.Resume(ctx, "no-such-task", "Alice", at)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResume_WithoutPauseEventCountsZero(t *testing.T) {
	// Data inconsistency: the active row says Paused but no Pause event was
	// ever logged. Resume proceeds with a zero interval instead of failing.
	svc, store := setupService(t)
	ctx := context.Background()
	clock := testutil.NewTestClock(t)

	id := startTask(t, svc, "u1", "Alice", "Facturas A", "01/01/2024 10:00:00")

	// Flip the state cell behind the service's back, bypassing history.
	rec, err := svc.FindByTaskID(ctx, id)
	require.NoError(t, err)
	rows, err := store.GetAllRows(ctx, DefaultActiveSheet)
	require.NoError(t, err)
	statusCol := rowstore.ColumnIndex(rows[0], "Status")
	require.NoError(t, store.UpdateCell(ctx, DefaultActiveSheet, rec.RowIndex, statusCol+1, string(domain.StatePaused)))

	require.NoError(t, svc.Resume(ctx, id, "Alice", testutil.TS(t, clock, "01/01/2024 10:30:00")))

	rec, err = svc.FindByTaskID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StateInProgress, rec.State)
	assert.Equal(t, "00:00:00", rec.PausedTotal)
}

func TestFinish_SetsFinishedStateAndTimestamp(t *testing.T) {
	svc, store := setupService(t)
	ctx := context.Background()
	clock := testutil.NewTestClock(t)

	id := startTask(t, svc, "u1", "Alice", "Facturas A", "01/01/2024 10:00:00")
	require.NoError(t, svc.Pause(ctx, id, "Alice", testutil.TS(t, clock, "01/01/2024 10:10:00")))
	require.NoError(t, svc.Resume(ctx, id, "Alice", testutil.TS(t, clock, "01/01/2024 10:25:00")))

	caseCount := 5
	require.NoError(t, svc.Finish(ctx, id, "Alice", testutil.TS(t, clock, "01/01/2024 11:00:00"), &caseCount))

	rec, err := svc.FindByTaskID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StateFinished, rec.State)
	assert.Equal(t, "01/01/2024 11:00:00", rec.FinishedAt)
	assert.Equal(t, "00:15:00", rec.PausedTotal)

	_, err = svc.FindActiveByOwner(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "finished tasks are excluded from the active lookup")

	events := historyRows(t, store)
	last := events[len(events)-1]
	assert.Equal(t, string(domain.EventFinish), last[7])
	assert.Equal(t, string(domain.StateFinished), last[5])
	assert.Equal(t, "00:15:00", last[8])
}

func TestFinish_WorksFromPaused(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()
	clock := testutil.NewTestClock(t)

	id := startTask(t, svc, "u1", "Alice", "Facturas A", "01/01/2024 10:00:00")
	require.NoError(t, svc.Pause(ctx, id, "Alice", testutil.TS(t, clock, "01/01/2024 10:10:00")))
	require.NoError(t, svc.Finish(ctx, id, "Alice", testutil.TS(t, clock, "01/01/2024 11:00:00"), nil))

	rec, err := svc.FindByTaskID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StateFinished, rec.State)
}

func TestFinish_RejectsAlreadyFinished(t *testing.T) {
	svc, store := setupService(t)
	ctx := context.Background()
	clock := testutil.NewTestClock(t)
	at := testutil.TS(t, clock, "01/01/2024 11:00:00")

	id := startTask(t, svc, "u1", "Alice", "Facturas A", "01/01/2024 10:00:00")
	require.NoError(t, svc.Finish(ctx, id, "Alice", at, nil))

	before := len(historyRows(t, store))
	err := svc.Finish(ctx, id, "Alice", at, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Len(t, historyRows(t, store), before, "a rejected transition appends no history row")
}

func TestFinish_RejectsNonPositiveCaseCountBeforeMutating(t *testing.T) {
	svc, store := setupService(t)
	ctx := context.Background()
	clock := testutil.NewTestClock(t)
	at := testutil.TS(t, clock, "01/01/2024 11:00:00")

	id := startTask(t, svc, "u1", "Alice", "Facturas A", "01/01/2024 10:00:00")

	zero := 0
	err := svc.Finish(ctx, id, "Alice", at, &zero)
	assert.ErrorIs(t, err, domain.ErrValidation)

	negative := -3
	err = svc.Finish(ctx, id, "Alice", at, &negative)
	assert.ErrorIs(t, err, domain.ErrValidation)

	rec, err := svc.FindByTaskID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StateInProgress, rec.State, "no side effects on invalid input")
	assert.Len(t, historyRows(t, store), 1)
}

func TestFindByTaskID_IsIdempotent(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	id := startTask(t, svc, "u1", "Alice", "Facturas A", "01/01/2024 10:00:00")

	first, err := svc.FindByTaskID(ctx, id)
	require.NoError(t, err)
	second, err := svc.FindByTaskID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindByTaskID_NotFound(t *testing.T) {
	svc, _ := setupService(t)
	_, err := svc.FindByTaskID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_ToleratesReorderedColumns(t *testing.T) {
	// Humans reorder sheet columns; every access resolves by name.
	store := rowstore.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.AppendRow(ctx, DefaultActiveSheet, []string{
		"Status", "Task ID", "Owner ID", "Owner", "Task Type", "Notes",
		"Accumulated Pause", "Started At", "Finished At",
	}))

	clock := testutil.NewTestClock(t)
	svc := NewService(store, clock, DefaultSheetNames())

	id, err := svc.Start(ctx, StartParams{
		OwnerID:   "u1",
		OwnerName: "Alice",
		TaskLabel: "Facturas A",
		StartedAt: testutil.TS(t, clock, "01/01/2024 10:00:00"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Pause(ctx, id, "Alice", testutil.TS(t, clock, "01/01/2024 10:10:00")))
	require.NoError(t, svc.Resume(ctx, id, "Alice", testutil.TS(t, clock, "01/01/2024 10:25:00")))

	rec, err := svc.FindByTaskID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StateInProgress, rec.State)
	assert.Equal(t, "00:15:00", rec.PausedTotal)
	assert.Equal(t, "01/01/2024 10:00:00", rec.StartedAt)
}

func TestService_ToleratesLegacyShortRows(t *testing.T) {
	// Rows written before the Finished At / Accumulated Pause columns existed
	// resolve with empty-string defaults instead of erroring.
	store := rowstore.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.AppendRow(ctx, DefaultActiveSheet, activeHeader))
	require.NoError(t, store.AppendRow(ctx, DefaultActiveSheet, []string{
		"u9", "u9_20230101000000_abcd1234", "Bob", "Reclamos", "", "In Progress",
	}))

	svc := NewService(store, testutil.NewTestClock(t), DefaultSheetNames())
	rec, err := svc.FindByTaskID(ctx, "u9_20230101000000_abcd1234")
	require.NoError(t, err)
	assert.Equal(t, domain.StateInProgress, rec.State)
	assert.Equal(t, "", rec.FinishedAt)
	assert.Equal(t, "00:00:00", rec.PausedTotal, "missing pause cell defaults to zero")
}
