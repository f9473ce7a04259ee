package domain

import "strings"

// TaskState is the lifecycle state of a task session. Finished is terminal.
type TaskState string

const (
	StateInProgress TaskState = "In Progress"
	StatePaused     TaskState = "Paused"
	StateFinished   TaskState = "Finished"
)

// EventType identifies a history log entry's transition.
type EventType string

const (
	EventStart  EventType = "Start"
	EventPause  EventType = "Pause"
	EventResume EventType = "Resume"
	EventFinish EventType = "Finish"
)

// ParseTaskState maps a sheet cell value to a TaskState. Matching is
// case-insensitive and ignores surrounding and internal whitespace, since
// the backing sheet is hand-editable. Unknown values yield ok=false.
func ParseTaskState(s string) (TaskState, bool) {
	switch normalizeState(s) {
	case "inprogress":
		return StateInProgress, true
	case "paused":
		return StatePaused, true
	case "finished":
		return StateFinished, true
	}
	return "", false
}

func normalizeState(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
