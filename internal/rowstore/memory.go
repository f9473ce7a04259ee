package rowstore

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store used by tests and dry runs. Each sheet
// is a grid of strings with the same 1-based addressing as the real backend.
type MemoryStore struct {
	mu     sync.Mutex
	sheets map[string][][]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sheets: make(map[string][][]string)}
}

func (m *MemoryStore) GetAllRows(_ context.Context, sheet string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.sheets[sheet]
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (m *MemoryStore) AppendRow(_ context.Context, sheet string, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sheets[sheet] = append(m.sheets[sheet], append([]string(nil), row...))
	return nil
}

func (m *MemoryStore) UpdateCell(_ context.Context, sheet string, rowIndex, colIndex int, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rowIndex < 1 || colIndex < 1 {
		return fmt.Errorf("cell %d,%d out of range", rowIndex, colIndex)
	}
	rows := m.sheets[sheet]
	if rowIndex > len(rows) {
		return fmt.Errorf("row %d out of range for sheet %q (%d rows)", rowIndex, sheet, len(rows))
	}
	row := rows[rowIndex-1]
	for len(row) < colIndex {
		row = append(row, "")
	}
	row[colIndex-1] = value
	rows[rowIndex-1] = row
	return nil
}
