package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/EzequielOmarArraygada/backoffice/internal/cli/formatter"
	"github.com/EzequielOmarArraygada/backoffice/internal/sheetscan"
)

// ConsoleNotifier writes flagged-row notifications to a writer. It stands in
// for the Discord channel notifier when running the scan from the CLI.
type ConsoleNotifier struct {
	Out io.Writer
}

func (c *ConsoleNotifier) Notify(_ context.Context, n sheetscan.Notification) error {
	_, err := fmt.Fprint(c.Out, formatter.FormatNotification(n))
	return err
}
