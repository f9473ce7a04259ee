package tasks

import (
	"github.com/EzequielOmarArraygada/backoffice/internal/rowstore"
)

// Default sheet names; overridable through configuration since operators
// rename tabs.
const (
	DefaultActiveSheet  = "Active Tasks"
	DefaultHistorySheet = "Task History"
)

// Canonical column titles. All lookups go through the column resolver, so
// these only fix spelling, not position.
const (
	colOwnerID     = "Owner ID"
	colTaskID      = "Task ID"
	colOwner       = "Owner"
	colTaskLabel   = "Task Type"
	colNotes       = "Notes"
	colStatus      = "Status"
	colStartedAt   = "Started At"
	colFinishedAt  = "Finished At"
	colPausedTotal = "Accumulated Pause"
	colEventAt     = "Event At"
	colEventType   = "Event Type"
)

// activeHeader is the header row written when the ActiveTasks sheet is empty.
var activeHeader = []string{
	colOwnerID, colTaskID, colOwner, colTaskLabel, colNotes,
	colStatus, colStartedAt, colFinishedAt, colPausedTotal,
}

// historyHeader is the header row written when the History sheet is empty.
var historyHeader = []string{
	colOwnerID, colTaskID, colOwner, colTaskLabel, colNotes,
	colStatus, colEventAt, colEventType, colPausedTotal,
}

// SheetNames selects which tabs of the backing store hold the two tables.
type SheetNames struct {
	Active  string
	History string
}

// DefaultSheetNames returns the canonical tab names.
func DefaultSheetNames() SheetNames {
	return SheetNames{Active: DefaultActiveSheet, History: DefaultHistorySheet}
}

// buildRow places values into a row shaped after the given header, resolving
// each column by name so appends stay aligned even when a human has
// reordered the sheet's columns. Values whose column is missing from the
// header are dropped; the sheet simply cannot hold them.
func buildRow(header []string, values map[string]string) []string {
	row := make([]string, len(header))
	for name, value := range values {
		if idx := rowstore.ColumnIndex(header, name); idx >= 0 {
			row[idx] = value
		}
	}
	return row
}
