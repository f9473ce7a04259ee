package formatter

import (
	"fmt"
	"strings"

	"github.com/EzequielOmarArraygada/backoffice/internal/domain"
	"github.com/EzequielOmarArraygada/backoffice/internal/sheetscan"
)

// FormatTask renders one task record for the status command.
func FormatTask(rec *domain.TaskRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", StateIndicator(rec.State), StyleBold.Render(rec.TaskLabel))
	fmt.Fprintf(&b, "  Task:    %s\n", rec.TaskID)
	fmt.Fprintf(&b, "  Owner:   %s (%s)\n", rec.OwnerName, rec.OwnerID)
	fmt.Fprintf(&b, "  Started: %s\n", rec.StartedAt)
	if rec.FinishedAt != "" {
		fmt.Fprintf(&b, "  Finished: %s\n", rec.FinishedAt)
	}
	fmt.Fprintf(&b, "  Paused total: %s\n", rec.PausedTotal)
	if rec.Notes != "" {
		fmt.Fprintf(&b, "  Notes: %s\n", Dim(rec.Notes))
	}
	return b.String()
}

// FormatNotification renders a flagged-row notification for the console,
// mirroring the message the bot posts to the cases channel.
func FormatNotification(n sheetscan.Notification) string {
	var b strings.Builder

	b.WriteString(StyleRed.Render("Error flagged in the cases sheet"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Row:          %d\n", n.RowIndex)
	fmt.Fprintf(&b, "  Agent:        %s\n", n.AgentName)
	fmt.Fprintf(&b, "  Order:        %s\n", n.OrderNumber)
	fmt.Fprintf(&b, "  Case:         %s\n", n.CaseNumber)
	fmt.Fprintf(&b, "  Request type: %s\n", n.RequestType)
	fmt.Fprintf(&b, "  Contact:      %s\n", n.Contact)
	fmt.Fprintf(&b, "  Error:        %s\n", n.ErrorText)
	return b.String()
}
