package formatter

import (
	"testing"

	"github.com/EzequielOmarArraygada/backoffice/internal/domain"
	"github.com/EzequielOmarArraygada/backoffice/internal/sheetscan"
	"github.com/stretchr/testify/assert"
)

func TestFormatTask(t *testing.T) {
	out := FormatTask(&domain.TaskRecord{
		OwnerID:     "u1",
		TaskID:      "u1_20240101100000_abcd1234",
		OwnerName:   "Alice",
		TaskLabel:   "Facturas A",
		Notes:       "lote 12",
		State:       domain.StatePaused,
		StartedAt:   "01/01/2024 10:00:00",
		PausedTotal: "00:15:00",
	})

	assert.Contains(t, out, "Paused")
	assert.Contains(t, out, "u1_20240101100000_abcd1234")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "00:15:00")
	assert.Contains(t, out, "lote 12")
	assert.NotContains(t, out, "Finished:", "no finished line while the task is open")
}

func TestFormatTask_FinishedShowsTimestamp(t *testing.T) {
	out := FormatTask(&domain.TaskRecord{
		TaskID:      "t1",
		State:       domain.StateFinished,
		StartedAt:   "01/01/2024 10:00:00",
		FinishedAt:  "01/01/2024 11:00:00",
		PausedTotal: "00:00:00",
	})
	assert.Contains(t, out, "01/01/2024 11:00:00")
}

func TestFormatNotification(t *testing.T) {
	out := FormatNotification(sheetscan.Notification{
		RowIndex:    3,
		OrderNumber: "P-2",
		CaseNumber:  "C-10",
		RequestType: "Invoice",
		Contact:     "b@x.com",
		AgentName:   "Bob",
		ErrorText:   "wrong amount",
	})

	assert.Contains(t, out, "Row:          3")
	assert.Contains(t, out, "P-2")
	assert.Contains(t, out, "wrong amount")
	assert.Contains(t, out, "Bob")
}
