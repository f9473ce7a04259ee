package tasks

import (
	"context"

	"github.com/EzequielOmarArraygada/backoffice/internal/domain"
	"github.com/EzequielOmarArraygada/backoffice/internal/rowstore"
)

// appendEvent writes one append-only History row. When the sheet is empty the
// canonical header is written first.
func (s *taskService) appendEvent(ctx context.Context, ev domain.HistoryEvent) error {
	rows, err := s.store.GetAllRows(ctx, s.sheets.History)
	if err != nil {
		return err
	}
	header := historyHeader
	if len(rows) == 0 {
		if err := s.store.AppendRow(ctx, s.sheets.History, historyHeader); err != nil {
			return err
		}
	} else {
		header = rows[0]
	}

	return s.store.AppendRow(ctx, s.sheets.History, buildRow(header, map[string]string{
		colOwnerID:     ev.OwnerID,
		colTaskID:      ev.TaskID,
		colOwner:       ev.OwnerName,
		colTaskLabel:   ev.TaskLabel,
		colNotes:       ev.Notes,
		colStatus:      string(ev.State),
		colEventAt:     ev.EventAt,
		colEventType:   string(ev.EventType),
		colPausedTotal: ev.PausedTotal,
	}))
}

// lastPauseAt scans the History sheet backwards for the most recent Pause
// event of the given task and returns its timestamp. ok is false when no
// Pause event exists, which callers treat as a zero pause interval rather
// than an error.
func (s *taskService) lastPauseAt(ctx context.Context, taskID string) (ts string, ok bool, err error) {
	rows, err := s.store.GetAllRows(ctx, s.sheets.History)
	if err != nil {
		return "", false, err
	}
	if len(rows) < 2 {
		return "", false, nil
	}
	header := rows[0]
	idCol := rowstore.ColumnIndex(header, colTaskID)
	typeCol := rowstore.ColumnIndex(header, colEventType)
	atCol := rowstore.ColumnIndex(header, colEventAt)
	if idCol < 0 || typeCol < 0 || atCol < 0 {
		return "", false, nil
	}
	for i := len(rows) - 1; i >= 1; i-- {
		row := rows[i]
		if rowstore.Cell(row, idCol) == taskID && rowstore.Cell(row, typeCol) == string(domain.EventPause) {
			return rowstore.Cell(row, atCol), true, nil
		}
	}
	return "", false, nil
}
