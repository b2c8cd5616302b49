package tui

import (
	"fmt"
	"strings"

	"github.com/mvoronin/clinic-sync/models"
)

// conflictModel renders one conflict prompt from the resolution coordinator.
// The dialog blocks the rest of the interface until the user picks a side;
// dismissing it counts as accepting the server copy.
type conflictModel struct {
	prompt models.ConflictPrompt
}

func (m conflictModel) View() string {
	conflict := m.prompt.Conflict

	var b strings.Builder
	b.WriteString(titleStyle.Render("Sync conflict"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s was changed on the server while you edited it offline.\n\n",
		collectionTitle(conflict.Collection)))

	b.WriteString(fmt.Sprintf("%-20s %-20s %s\n", "Field", "Your value", "Server value"))
	for _, diff := range conflict.Fields {
		b.WriteString(fmt.Sprintf("%-20s %-20s %s\n", diff.Label, diff.Local, diff.Server))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("m keep my change · s take server version · esc take server version"))
	return overlayBoxStyle.Render(b.String())
}
