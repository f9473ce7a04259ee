package rowstore

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteStore implements Store over a local SQLite database, mirroring
// spreadsheet cell addressing in a single sheet_cells table. It backs the
// CLI when no spreadsheet credentials are configured and doubles as the
// integration-test store.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a SQLiteStore over an opened database (see
// internal/db for opening and migrating).
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) GetAllRows(ctx context.Context, sheet string) ([][]string, error) {
	query := `SELECT row_idx, col_idx, value FROM sheet_cells
		WHERE sheet = ? ORDER BY row_idx, col_idx`
	rows, err := s.db.QueryContext(ctx, query, sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w: %v", sheet, ErrUnavailable, err)
	}
	defer rows.Close()

	var grid [][]string
	for rows.Next() {
		var rowIdx, colIdx int
		var value string
		if err := rows.Scan(&rowIdx, &colIdx, &value); err != nil {
			return nil, fmt.Errorf("scanning sheet cell: %w", err)
		}
		for len(grid) < rowIdx {
			grid = append(grid, nil)
		}
		row := grid[rowIdx-1]
		for len(row) < colIdx {
			row = append(row, "")
		}
		row[colIdx-1] = value
		grid[rowIdx-1] = row
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sheet cells: %w", err)
	}
	return grid, nil
}

func (s *SQLiteStore) AppendRow(ctx context.Context, sheet string, row []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("appending to sheet %q: %w: %v", sheet, ErrUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	var last sql.NullInt64
	if err := tx.QueryRowContext(ctx,
		`SELECT MAX(row_idx) FROM sheet_cells WHERE sheet = ?`, sheet).Scan(&last); err != nil {
		return fmt.Errorf("finding last row of sheet %q: %w", sheet, err)
	}
	next := int(last.Int64) + 1

	for i, value := range row {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sheet_cells (sheet, row_idx, col_idx, value) VALUES (?, ?, ?, ?)`,
			sheet, next, i+1, value); err != nil {
			return fmt.Errorf("writing cell %d of sheet %q: %w", i+1, sheet, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing append to sheet %q: %w", sheet, err)
	}
	return nil
}

func (s *SQLiteStore) UpdateCell(ctx context.Context, sheet string, rowIndex, colIndex int, value string) error {
	if rowIndex < 1 || colIndex < 1 {
		return fmt.Errorf("cell %d,%d out of range", rowIndex, colIndex)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sheet_cells (sheet, row_idx, col_idx, value) VALUES (?, ?, ?, ?)
		ON CONFLICT(sheet, row_idx, col_idx) DO UPDATE SET value = excluded.value`,
		sheet, rowIndex, colIndex, value)
	if err != nil {
		return fmt.Errorf("updating cell %d,%d of sheet %q: %w: %v", rowIndex, colIndex, sheet, ErrUnavailable, err)
	}
	return nil
}
