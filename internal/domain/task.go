package domain

// TaskRecord is one row of the ActiveTasks sheet, resolved by column name.
// StartedAt and FinishedAt stay in the sheet's dd/mm/yyyy HH:MM:SS wire
// format: the core never does arithmetic on them directly and legacy rows
// with blank or hand-edited values must survive a round trip untouched.
type TaskRecord struct {
	OwnerID     string
	TaskID      string
	OwnerName   string
	TaskLabel   string
	Notes       string
	State       TaskState
	StartedAt   string
	FinishedAt  string
	PausedTotal string // accumulated pause duration, HH:MM:SS

	// RowIndex is the 1-based position of the row in the backing sheet
	// (header row is 1, first data row is 2). Derived, never stored.
	RowIndex int
}

// Active reports whether the record still counts against the
// one-active-task-per-owner invariant.
func (t *TaskRecord) Active() bool {
	return t.State == StateInProgress || t.State == StatePaused
}

// HistoryEvent is one append-only row of the History sheet. State is the
// state resulting from the event, PausedTotal the running total at event time.
type HistoryEvent struct {
	OwnerID     string
	TaskID      string
	OwnerName   string
	TaskLabel   string
	Notes       string
	State       TaskState
	EventAt     string
	EventType   EventType
	PausedTotal string
}
