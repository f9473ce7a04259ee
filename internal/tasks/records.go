package tasks

import (
	"context"
	"fmt"

	"github.com/EzequielOmarArraygada/backoffice/internal/domain"
	"github.com/EzequielOmarArraygada/backoffice/internal/rowstore"
	"github.com/EzequielOmarArraygada/backoffice/internal/timeutil"
)

// recordFromRow resolves a data row into a TaskRecord. Missing cells default
// to empty strings (legacy rows are shorter than the header); an empty
// accumulated-pause cell reads as the zero duration. rowIndex is 1-based,
// counting the header row.
func recordFromRow(header, row []string, rowIndex int) *domain.TaskRecord {
	rec := &domain.TaskRecord{
		OwnerID:     rowstore.Cell(row, rowstore.ColumnIndex(header, colOwnerID)),
		TaskID:      rowstore.Cell(row, rowstore.ColumnIndex(header, colTaskID)),
		OwnerName:   rowstore.Cell(row, rowstore.ColumnIndex(header, colOwner)),
		TaskLabel:   rowstore.Cell(row, rowstore.ColumnIndex(header, colTaskLabel)),
		Notes:       rowstore.Cell(row, rowstore.ColumnIndex(header, colNotes)),
		StartedAt:   rowstore.Cell(row, rowstore.ColumnIndex(header, colStartedAt)),
		FinishedAt:  rowstore.Cell(row, rowstore.ColumnIndex(header, colFinishedAt)),
		PausedTotal: rowstore.Cell(row, rowstore.ColumnIndex(header, colPausedTotal)),
		RowIndex:    rowIndex,
	}
	if rec.PausedTotal == "" {
		rec.PausedTotal = timeutil.ZeroDuration
	}
	// An unrecognized status cell leaves State zero-valued: the record is not
	// active and no transition out of it is legal.
	if state, ok := domain.ParseTaskState(rowstore.Cell(row, rowstore.ColumnIndex(header, colStatus))); ok {
		rec.State = state
	}
	return rec
}

// FindByTaskID scans the ActiveTasks sheet for the row with the given task ID.
func (s *taskService) FindByTaskID(ctx context.Context, taskID string) (*domain.TaskRecord, error) {
	header, rows, err := s.activeRows(ctx)
	if err != nil {
		return nil, err
	}
	idCol := rowstore.ColumnIndex(header, colTaskID)
	if idCol < 0 {
		return nil, fmt.Errorf("task %q: %w", taskID, domain.ErrNotFound)
	}
	for i, row := range rows {
		if rowstore.Cell(row, idCol) == taskID {
			return recordFromRow(header, row, i+2), nil
		}
	}
	return nil, fmt.Errorf("task %q: %w", taskID, domain.ErrNotFound)
}

// FindActiveByOwner scans the ActiveTasks sheet for the owner's task that is
// still in progress or paused. Finished rows stay in the sheet but are
// excluded here.
func (s *taskService) FindActiveByOwner(ctx context.Context, ownerID string) (*domain.TaskRecord, error) {
	header, rows, err := s.activeRows(ctx)
	if err != nil {
		return nil, err
	}
	ownerCol := rowstore.ColumnIndex(header, colOwnerID)
	if ownerCol < 0 {
		return nil, fmt.Errorf("active task for owner %q: %w", ownerID, domain.ErrNotFound)
	}
	for i, row := range rows {
		if rowstore.Cell(row, ownerCol) != ownerID {
			continue
		}
		rec := recordFromRow(header, row, i+2)
		if rec.Active() {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("active task for owner %q: %w", ownerID, domain.ErrNotFound)
}

// activeRows reads the ActiveTasks sheet and splits it into header and data
// rows. An empty sheet yields the canonical header and no rows.
func (s *taskService) activeRows(ctx context.Context) (header []string, data [][]string, err error) {
	rows, err := s.store.GetAllRows(ctx, s.sheets.Active)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return activeHeader, nil, nil
	}
	return rows[0], rows[1:], nil
}

// updateField overwrites a single cell of a task row, addressed by column
// name against the sheet's current header.
func (s *taskService) updateField(ctx context.Context, header []string, rowIndex int, column, value string) error {
	idx := rowstore.ColumnIndex(header, column)
	if idx < 0 {
		return fmt.Errorf("column %q missing from sheet %q", column, s.sheets.Active)
	}
	return s.store.UpdateCell(ctx, s.sheets.Active, rowIndex, idx+1, value)
}
