// Package sheetscan holds the row-store side of the back-office checks: the
// periodic scan for externally flagged error rows and the duplicate-order
// lookup. Delivery of notifications (Discord in production) stays behind the
// Notifier port.
package sheetscan

import (
	"context"
	"log/slog"
	"strings"

	"github.com/EzequielOmarArraygada/backoffice/internal/rowstore"
	"github.com/EzequielOmarArraygada/backoffice/internal/timeutil"
)

const (
	colError         = "Error"
	colErrorNotified = "Error Notified"
	colOrderNumber   = "Order Number"
	colCaseNumber    = "Case Number"
	colRequestType   = "Request Type"
	colContact       = "Contact"
	colAgent         = "Agent"

	// notifiedStampLayout is the dash-separated timestamp written next to the
	// "Notified" marker. Distinct from the slash-separated task timestamps.
	notifiedStampLayout = "02-01-2006 15:04:05"
)

// Notification describes one flagged row for the presentation layer.
type Notification struct {
	RowIndex    int // 1-based sheet row
	OrderNumber string
	CaseNumber  string
	RequestType string
	Contact     string
	AgentName   string
	ErrorText   string
}

// Notifier delivers a flagged-row notification. Implementations decide the
// channel and formatting.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Scanner finds case rows flagged with an error that have not been notified
// yet, notifies them, and stamps them notified so the next scan skips them.
type Scanner struct {
	store    rowstore.Store
	notifier Notifier
	clock    *timeutil.Clock
	logger   *slog.Logger
}

// NewScanner wires a Scanner over the given store and notifier.
func NewScanner(store rowstore.Store, notifier Notifier, clock *timeutil.Clock) *Scanner {
	return &Scanner{store: store, notifier: notifier, clock: clock, logger: slog.Default()}
}

// Scan walks the cases sheet once and returns how many rows were notified.
// Rows whose notification fails are left unstamped and picked up again on the
// next scan. A sheet without the Error / Error Notified columns is skipped
// without error, matching how the sheet behaves before the columns are added.
func (s *Scanner) Scan(ctx context.Context, sheet string) (int, error) {
	rows, err := s.store.GetAllRows(ctx, sheet)
	if err != nil {
		return 0, err
	}
	if len(rows) < 2 {
		return 0, nil
	}

	header := rows[0]
	errCol := rowstore.ColumnIndex(header, colError)
	notifiedCol := rowstore.ColumnIndex(header, colErrorNotified)
	if errCol < 0 || notifiedCol < 0 {
		s.logger.Warn("cases sheet is missing the error columns, skipping scan",
			"sheet", sheet, "has_error_col", errCol >= 0, "has_notified_col", notifiedCol >= 0)
		return 0, nil
	}

	notified := 0
	for i, row := range rows[1:] {
		rowIndex := i + 2
		errText := strings.TrimSpace(rowstore.Cell(row, errCol))
		already := strings.TrimSpace(rowstore.Cell(row, notifiedCol))
		if errText == "" || already != "" {
			continue
		}

		n := Notification{
			RowIndex:    rowIndex,
			OrderNumber: rowstore.Cell(row, rowstore.ColumnIndex(header, colOrderNumber)),
			CaseNumber:  rowstore.Cell(row, rowstore.ColumnIndex(header, colCaseNumber)),
			RequestType: rowstore.Cell(row, rowstore.ColumnIndex(header, colRequestType)),
			Contact:     rowstore.Cell(row, rowstore.ColumnIndex(header, colContact)),
			AgentName:   rowstore.Cell(row, rowstore.ColumnIndex(header, colAgent)),
			ErrorText:   errText,
		}
		if err := s.notifier.Notify(ctx, n); err != nil {
			s.logger.Error("error-row notification failed, row left unstamped",
				"sheet", sheet, "row", rowIndex, "error", err)
			continue
		}

		stamp := "Notified " + s.clock.Now().Format(notifiedStampLayout)
		if err := s.store.UpdateCell(ctx, sheet, rowIndex, notifiedCol+1, stamp); err != nil {
			s.logger.Error("failed to stamp notified row", "sheet", sheet, "row", rowIndex, "error", err)
			continue
		}
		notified++
	}
	return notified, nil
}
