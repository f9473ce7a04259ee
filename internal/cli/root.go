package cli

import (
	"github.com/EzequielOmarArraygada/backoffice/internal/rowstore"
	"github.com/EzequielOmarArraygada/backoffice/internal/sheetscan"
	"github.com/EzequielOmarArraygada/backoffice/internal/tasks"
	"github.com/EzequielOmarArraygada/backoffice/internal/timeutil"
	"github.com/spf13/cobra"
)

// App holds references to the services CLI commands operate on.
type App struct {
	Tasks      tasks.Service
	Store      rowstore.Store
	Scanner    *sheetscan.Scanner
	Clock      *timeutil.Clock
	CasesSheet string

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "backoffice" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "backoffice",
		Short: "Back-office task sessions and case-sheet checks",
	}

	root.AddCommand(
		newTaskCmd(app),
		newScanCmd(app),
		newOrderCmd(app),
	)

	return root
}
