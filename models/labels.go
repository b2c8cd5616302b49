package models

// Field name constants for the synchronized collections. Field names are
// the wire-level keys inside a record's FieldMap; labels are what the UI
// (lists, detail views, conflict dialogs) shows for them.
const (
	FieldMemberID        = "member_id"
	FieldPayer           = "payer"
	FieldPlanName        = "plan_name"
	FieldCoveragePercent = "coverage_percent"
	FieldDeductibleCents = "deductible_cents"

	FieldPatientRef  = "patient_ref"
	FieldAmountCents = "amount_cents"
	FieldMethod      = "method"
	FieldPostedOn    = "posted_on"

	FieldInstrument = "instrument"
	FieldScore      = "score"
	FieldRecordedOn = "recorded_on"
	FieldNotes      = "notes"
)

var fieldLabels = map[Collection]map[string]string{
	CollectionInsuranceCards: {
		FieldMemberID:        "Member ID",
		FieldPayer:           "Payer",
		FieldPlanName:        "Plan",
		FieldCoveragePercent: "Coverage %",
		FieldDeductibleCents: "Deductible (cents)",
		FieldPatientRef:      "Patient",
	},
	CollectionPayments: {
		FieldPatientRef:  "Patient",
		FieldAmountCents: "Amount (cents)",
		FieldMethod:      "Method",
		FieldPostedOn:    "Posted on",
		FieldNotes:       "Notes",
	},
	CollectionOutcomeMeasures: {
		FieldPatientRef: "Patient",
		FieldInstrument: "Instrument",
		FieldScore:      "Score",
		FieldRecordedOn: "Recorded on",
		FieldNotes:      "Notes",
	},
}

// FieldLabel returns the display label for a field of the given collection,
// falling back to the raw field name when no label is registered.
func FieldLabel(collection Collection, field string) string {
	if labels, ok := fieldLabels[collection]; ok {
		if label, ok := labels[field]; ok {
			return label
		}
	}
	return field
}
