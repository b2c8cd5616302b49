package tui

import (
	"fmt"
	"strings"

	"github.com/mvoronin/clinic-sync/models"
)

type detailModel struct {
	record models.Record
	status string
}

func (m detailModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(collectionTitle(m.record.Collection)))
	b.WriteString("\n\n")

	for _, field := range formSchemas[m.record.Collection] {
		label := models.FieldLabel(m.record.Collection, field)
		b.WriteString(fmt.Sprintf("%-20s %s\n", label+":", m.record.Fields[field]))
	}

	b.WriteString("\n")
	if m.record.Synced {
		b.WriteString(fmt.Sprintf("version %d, synced\n", m.record.Version))
	} else {
		b.WriteString(unsyncedStyle.Render("local changes not yet pushed"))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("e edit · d delete · c copy first field · esc back"))
	return b.String()
}
