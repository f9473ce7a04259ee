package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/EzequielOmarArraygada/backoffice/internal/domain"
	"github.com/EzequielOmarArraygada/backoffice/internal/rowstore"
	"github.com/EzequielOmarArraygada/backoffice/internal/timeutil"
	"github.com/google/uuid"
)

// Service is the task session state machine. Transitions are validated
// against the persisted state read immediately before the mutating write; the
// store is the single source of truth and nothing is cached across calls.
type Service interface {
	// Start creates a new session and returns its task ID. Fails with
	// ErrDuplicateActiveSession while the owner has a task in progress or
	// paused.
	Start(ctx context.Context, p StartParams) (string, error)

	// Pause moves an in-progress session to Paused. The pause clock starts
	// now but is only materialized on the matching Resume.
	Pause(ctx context.Context, taskID, actor string, at time.Time) error

	// Resume moves a paused session back to InProgress, adding the elapsed
	// pause interval to the accumulated total.
	Resume(ctx context.Context, taskID, actor string, at time.Time) error

	// Finish terminates an in-progress or paused session. caseCount is an
	// optional presentation-layer annotation; a non-positive value is
	// rejected with ErrValidation before any state changes.
	Finish(ctx context.Context, taskID, actor string, at time.Time, caseCount *int) error

	FindByTaskID(ctx context.Context, taskID string) (*domain.TaskRecord, error)
	FindActiveByOwner(ctx context.Context, ownerID string) (*domain.TaskRecord, error)
}

// StartParams carries everything captured at session creation time.
type StartParams struct {
	OwnerID   string
	OwnerName string
	TaskLabel string
	Notes     string
	StartedAt time.Time
}

type taskService struct {
	store    rowstore.Store
	clock    *timeutil.Clock
	sheets   SheetNames
	locks    *keyedMutex
	observer UseCaseObserver
	logger   *slog.Logger
}

// NewService builds the state machine over the given row store. The clock
// fixes the timezone every sheet timestamp is rendered in.
func NewService(store rowstore.Store, clock *timeutil.Clock, sheets SheetNames, observers ...UseCaseObserver) Service {
	if sheets.Active == "" {
		sheets.Active = DefaultActiveSheet
	}
	if sheets.History == "" {
		sheets.History = DefaultHistorySheet
	}
	return &taskService{
		store:    store,
		clock:    clock,
		sheets:   sheets,
		locks:    newKeyedMutex(),
		observer: useCaseObserverOrNoop(observers),
		logger:   slog.Default(),
	}
}

func (s *taskService) Start(ctx context.Context, p StartParams) (taskID string, err error) {
	defer s.observe(ctx, "start", time.Now(), map[string]any{"owner_id": p.OwnerID}, &err)

	if strings.TrimSpace(p.OwnerID) == "" {
		return "", fmt.Errorf("%w: owner id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(p.TaskLabel) == "" {
		return "", fmt.Errorf("%w: task type is required", domain.ErrValidation)
	}

	unlock := s.locks.lock("owner:" + p.OwnerID)
	defer unlock()

	rows, err := s.store.GetAllRows(ctx, s.sheets.Active)
	if err != nil {
		return "", err
	}
	header := activeHeader
	if len(rows) == 0 {
		if err := s.store.AppendRow(ctx, s.sheets.Active, activeHeader); err != nil {
			return "", err
		}
	} else {
		header = rows[0]
	}

	ownerCol := rowstore.ColumnIndex(header, colOwnerID)
	if ownerCol < 0 {
		return "", fmt.Errorf("column %q missing from sheet %q", colOwnerID, s.sheets.Active)
	}
	var data [][]string
	if len(rows) > 1 {
		data = rows[1:]
	}
	for i, row := range data {
		if rowstore.Cell(row, ownerCol) != p.OwnerID {
			continue
		}
		if rec := recordFromRow(header, row, i+2); rec.Active() {
			return "", fmt.Errorf("owner %q has task %q in state %q: %w",
				p.OwnerID, rec.TaskID, rec.State, domain.ErrDuplicateActiveSession)
		}
	}

	taskID = newTaskID(p.OwnerID, p.StartedAt)
	startedAt := s.clock.Format(p.StartedAt)

	err = s.store.AppendRow(ctx, s.sheets.Active, buildRow(header, map[string]string{
		colOwnerID:     p.OwnerID,
		colTaskID:      taskID,
		colOwner:       p.OwnerName,
		colTaskLabel:   p.TaskLabel,
		colNotes:       p.Notes,
		colStatus:      string(domain.StateInProgress),
		colStartedAt:   startedAt,
		colFinishedAt:  "",
		colPausedTotal: timeutil.ZeroDuration,
	}))
	if err != nil {
		return "", err
	}

	err = s.appendEvent(ctx, domain.HistoryEvent{
		OwnerID:     p.OwnerID,
		TaskID:      taskID,
		OwnerName:   p.OwnerName,
		TaskLabel:   p.TaskLabel,
		Notes:       p.Notes,
		State:       domain.StateInProgress,
		EventAt:     startedAt,
		EventType:   domain.EventStart,
		PausedTotal: timeutil.ZeroDuration,
	})
	if err != nil {
		return "", err
	}
	return taskID, nil
}

func (s *taskService) Pause(ctx context.Context, taskID, actor string, at time.Time) (err error) {
	defer s.observe(ctx, "pause", time.Now(), map[string]any{"task_id": taskID}, &err)

	unlock := s.locks.lock("task:" + taskID)
	defer unlock()

	rec, err := s.FindByTaskID(ctx, taskID)
	if err != nil {
		return err
	}
	switch rec.State {
	case domain.StateInProgress:
	case domain.StatePaused:
		return fmt.Errorf("task %q is already paused: %w", taskID, domain.ErrInvalidTransition)
	default:
		return fmt.Errorf("task %q is not in progress: %w", taskID, domain.ErrInvalidTransition)
	}

	header, _, err := s.activeRows(ctx)
	if err != nil {
		return err
	}
	if err := s.updateField(ctx, header, rec.RowIndex, colStatus, string(domain.StatePaused)); err != nil {
		return err
	}

	// The accumulated total is unchanged by a pause itself; the interval is
	// materialized on the matching Resume.
	return s.appendEvent(ctx, domain.HistoryEvent{
		OwnerID:     rec.OwnerID,
		TaskID:      taskID,
		OwnerName:   actor,
		TaskLabel:   rec.TaskLabel,
		Notes:       rec.Notes,
		State:       domain.StatePaused,
		EventAt:     s.clock.Format(at),
		EventType:   domain.EventPause,
		PausedTotal: rec.PausedTotal,
	})
}

func (s *taskService) Resume(ctx context.Context, taskID, actor string, at time.Time) (err error) {
	defer s.observe(ctx, "resume", time.Now(), map[string]any{"task_id": taskID}, &err)

	unlock := s.locks.lock("task:" + taskID)
	defer unlock()

	rec, err := s.FindByTaskID(ctx, taskID)
	if err != nil {
		return err
	}
	switch rec.State {
	case domain.StatePaused:
	case domain.StateInProgress:
		return fmt.Errorf("task %q is already in progress: %w", taskID, domain.ErrInvalidTransition)
	default:
		return fmt.Errorf("task %q is not paused: %w", taskID, domain.ErrInvalidTransition)
	}

	eventAt := s.clock.Format(at)
	interval := timeutil.ZeroDuration
	pausedAt, found, err := s.lastPauseAt(ctx, taskID)
	if err != nil {
		return err
	}
	if found {
		interval, err = s.clock.Elapsed(pausedAt, eventAt)
		if err != nil {
			s.logger.Warn("pause interval unreadable, counting zero",
				"task_id", taskID, "paused_at", pausedAt, "error", err)
			err = nil
		}
	} else {
		// Inconsistent history (no Pause event for a paused task). Count the
		// interval as zero and proceed.
		s.logger.Warn("no pause event in history for paused task", "task_id", taskID)
	}
	newTotal := timeutil.SumDurations(rec.PausedTotal, interval)

	header, _, err := s.activeRows(ctx)
	if err != nil {
		return err
	}
	if err := s.updateField(ctx, header, rec.RowIndex, colPausedTotal, newTotal); err != nil {
		return err
	}
	if err := s.updateField(ctx, header, rec.RowIndex, colStatus, string(domain.StateInProgress)); err != nil {
		return err
	}

	return s.appendEvent(ctx, domain.HistoryEvent{
		OwnerID:     rec.OwnerID,
		TaskID:      taskID,
		OwnerName:   actor,
		TaskLabel:   rec.TaskLabel,
		Notes:       rec.Notes,
		State:       domain.StateInProgress,
		EventAt:     eventAt,
		EventType:   domain.EventResume,
		PausedTotal: newTotal,
	})
}

func (s *taskService) Finish(ctx context.Context, taskID, actor string, at time.Time, caseCount *int) (err error) {
	defer s.observe(ctx, "finish", time.Now(), map[string]any{"task_id": taskID}, &err)

	// Validate before touching the store: no partial state changes on bad
	// input.
	if caseCount != nil && *caseCount <= 0 {
		return fmt.Errorf("%w: case count must be a positive integer, got %d", domain.ErrValidation, *caseCount)
	}

	unlock := s.locks.lock("task:" + taskID)
	defer unlock()

	rec, err := s.FindByTaskID(ctx, taskID)
	if err != nil {
		return err
	}
	if !rec.Active() {
		return fmt.Errorf("task %q is not active: %w", taskID, domain.ErrInvalidTransition)
	}

	eventAt := s.clock.Format(at)
	header, _, err := s.activeRows(ctx)
	if err != nil {
		return err
	}
	if err := s.updateField(ctx, header, rec.RowIndex, colStatus, string(domain.StateFinished)); err != nil {
		return err
	}
	if err := s.updateField(ctx, header, rec.RowIndex, colFinishedAt, eventAt); err != nil {
		return err
	}

	return s.appendEvent(ctx, domain.HistoryEvent{
		OwnerID:     rec.OwnerID,
		TaskID:      taskID,
		OwnerName:   actor,
		TaskLabel:   rec.TaskLabel,
		Notes:       rec.Notes,
		State:       domain.StateFinished,
		EventAt:     eventAt,
		EventType:   domain.EventFinish,
		PausedTotal: rec.PausedTotal,
	})
}

func (s *taskService) observe(ctx context.Context, name string, started time.Time, fields map[string]any, err *error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
		StartedAt: started,
	})
}

// newTaskID derives a unique session identifier from the owner, the start
// time, and a random suffix, so rapid repeated starts never collide.
func newTaskID(ownerID string, at time.Time) string {
	return fmt.Sprintf("%s_%s_%s", ownerID, at.Format("20060102150405"), uuid.NewString()[:8])
}
