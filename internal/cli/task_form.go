package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Task types offered in the interactive form. "Other" opens a free-text
// label, mirroring the bot's select menu.
var taskTypeOptions = []string{
	"Facturas A",
	"Reclamos ML",
	"Cambios y devoluciones",
	"Cargas de casos",
	"Other",
}

// runStartForm collects the start parameters interactively for any that were
// not provided as flags.
func runStartForm(ownerID, ownerName, taskLabel, notes *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Owner user ID").
				Value(ownerID).
				Validate(requireNonEmpty("owner user ID")),
			huh.NewInput().
				Title("Display name").
				Value(ownerName),
			huh.NewSelect[string]().
				Title("Task type").
				Options(huh.NewOptions(taskTypeOptions...)...).
				Value(taskLabel),
			huh.NewInput().
				Title("Notes (optional)").
				Value(notes),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return fmt.Errorf("start form: %w", err)
	}

	if *taskLabel == "Other" {
		other := ""
		err := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Describe the task").
				Value(&other).
				Validate(requireNonEmpty("task description")),
		)).WithShowHelp(false).Run()
		if err != nil {
			return fmt.Errorf("start form: %w", err)
		}
		*taskLabel = other
	}
	return nil
}

func requireNonEmpty(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}
