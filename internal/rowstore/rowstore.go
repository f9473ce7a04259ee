// Package rowstore defines the table-shaped persistence contract the task
// tracker runs against. The production deployment backs it with a Google
// Sheets client; this repo ships a sqlite-backed implementation for local
// operation and an in-memory one for tests. Rows and columns use 1-based
// spreadsheet addressing, and the first row of every sheet is the header.
package rowstore

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the backing store could not be reached or refused
// the request (network, auth, quota). It is always propagated to the caller,
// never swallowed.
var ErrUnavailable = errors.New("row store unavailable")

// Store is the minimal surface the original spreadsheet client exposes.
type Store interface {
	// GetAllRows returns every row of the sheet, header row first. Rows may
	// be ragged: trailing empty cells are not guaranteed to be present.
	GetAllRows(ctx context.Context, sheet string) ([][]string, error)

	// AppendRow adds a row after the last non-empty row of the sheet.
	AppendRow(ctx context.Context, sheet string, row []string) error

	// UpdateCell overwrites a single cell. rowIndex and colIndex are 1-based.
	UpdateCell(ctx context.Context, sheet string, rowIndex, colIndex int, value string) error
}
