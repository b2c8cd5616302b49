package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/mvoronin/clinic-sync/models"
)

// listFields names the fields shown as the one-line summary of a record in
// each collection's list.
var listFields = map[models.Collection][]string{
	models.CollectionInsuranceCards:  {models.FieldMemberID, models.FieldPayer},
	models.CollectionPayments:        {models.FieldPatientRef, models.FieldAmountCents},
	models.CollectionOutcomeMeasures: {models.FieldPatientRef, models.FieldInstrument, models.FieldScore},
}

type listModel struct {
	collection models.Collection
	records    []models.Record
	idx        int
	loading    bool
	syncing    bool
	spinner    spinner.Model
	status     string
	online     bool
	pending    int
}

func newListModel() listModel {
	return listModel{spinner: spinner.New()}
}

func (m listModel) current() (models.Record, bool) {
	if m.idx < 0 || m.idx >= len(m.records) {
		return models.Record{}, false
	}
	return m.records[m.idx], true
}

func (m listModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(collectionTitle(m.collection)))
	b.WriteString("  ")
	b.WriteString(statusBadge(m.online, m.pending))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("loading...\n")
	case m.syncing:
		b.WriteString(m.spinner.View() + " syncing...\n\n")
	}

	if len(m.records) == 0 && !m.loading {
		b.WriteString(helpStyle.Render("no records yet — press n to add one"))
		b.WriteString("\n")
	}

	for i, record := range m.records {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + summaryLine(m.collection, record) + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter open · n new · s sync · esc back · q quit"))
	return b.String()
}

func summaryLine(collection models.Collection, record models.Record) string {
	parts := make([]string, 0, 4)
	for _, field := range listFields[collection] {
		if value := record.Fields[field]; value != "" {
			parts = append(parts, value)
		}
	}
	line := strings.Join(parts, " · ")
	if line == "" {
		line = record.LocalID
	}
	if !record.Synced {
		line += " " + unsyncedStyle.Render("[unsynced]")
	}
	return line
}
