package db

import (
	"database/sql"
	"fmt"
)

// migrations holds all schema statements. Each must be idempotent since the
// whole slice is re-run on every open.
var migrations = []string{
	// One row per non-empty cell, addressed the way the spreadsheet backend
	// addresses cells: 1-based row and column, header row at row_idx 1.
	`CREATE TABLE IF NOT EXISTS sheet_cells (
		sheet   TEXT NOT NULL,
		row_idx INTEGER NOT NULL CHECK(row_idx >= 1),
		col_idx INTEGER NOT NULL CHECK(col_idx >= 1),
		value   TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (sheet, row_idx, col_idx)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sheet_cells_sheet_row ON sheet_cells(sheet, row_idx)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
