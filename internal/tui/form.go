package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mvoronin/clinic-sync/models"
)

// formSchemas lists, per collection, the editable fields in display order.
// The same order drives the detail view.
var formSchemas = map[models.Collection][]string{
	models.CollectionInsuranceCards: {
		models.FieldPatientRef,
		models.FieldMemberID,
		models.FieldPayer,
		models.FieldPlanName,
		models.FieldCoveragePercent,
		models.FieldDeductibleCents,
	},
	models.CollectionPayments: {
		models.FieldPatientRef,
		models.FieldAmountCents,
		models.FieldMethod,
		models.FieldPostedOn,
		models.FieldNotes,
	},
	models.CollectionOutcomeMeasures: {
		models.FieldPatientRef,
		models.FieldInstrument,
		models.FieldScore,
		models.FieldRecordedOn,
		models.FieldNotes,
	},
}

type formModel struct {
	collection models.Collection
	fields     []string
	inputs     []textinput.Model
	focus      int
	editing    bool
	localID    string
	submitting bool
}

// newFormModel builds an empty create form, or an edit form pre-filled from
// record when it is non-nil.
func newFormModel(collection models.Collection, record *models.Record) formModel {
	fields := formSchemas[collection]
	inputs := make([]textinput.Model, len(fields))
	for i, field := range fields {
		input := textinput.New()
		input.Placeholder = models.FieldLabel(collection, field)
		if record != nil {
			input.SetValue(record.Fields[field])
		}
		inputs[i] = input
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	m := formModel{collection: collection, fields: fields, inputs: inputs}
	if record != nil {
		m.editing = true
		m.localID = record.LocalID
	}
	return m
}

// toFields collects the current input values into a field map, dropping
// blanks so optional fields stay absent rather than empty.
func (m formModel) toFields() models.FieldMap {
	fields := models.FieldMap{}
	for i, field := range m.fields {
		value := strings.TrimSpace(m.inputs[i].Value())
		if value != "" {
			fields[field] = value
		}
	}
	return fields
}

func (m formModel) View() string {
	var b strings.Builder
	if m.editing {
		b.WriteString(titleStyle.Render("Edit " + collectionTitle(m.collection)))
	} else {
		b.WriteString(titleStyle.Render("New " + collectionTitle(m.collection)))
	}
	b.WriteString("\n\n")
	for i, field := range m.fields {
		label := models.FieldLabel(m.collection, field)
		b.WriteString(label + "\n" + m.inputs[i].View() + "\n\n")
	}
	if m.submitting {
		b.WriteString("saving...\n\n")
	}
	b.WriteString(helpStyle.Render("tab next field · enter save · esc cancel"))
	return b.String()
}
