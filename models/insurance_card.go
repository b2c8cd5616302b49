package models

import "strconv"

// InsuranceCard is the typed view over an insurance-card record's fields.
// The sync engine itself only ever handles FieldMap values; typed views
// exist for the editing screens and the validators.
type InsuranceCard struct {
	PatientRef      string
	MemberID        string
	Payer           string
	PlanName        string
	CoveragePercent int
	DeductibleCents int64
}

// InsuranceCardFromFields decodes an insurance card from record fields.
// Numeric fields that fail to parse decode as zero; the validators reject
// such values before they ever reach the server.
func InsuranceCardFromFields(fields FieldMap) InsuranceCard {
	coverage, _ := strconv.Atoi(fields[FieldCoveragePercent])
	deductible, _ := strconv.ParseInt(fields[FieldDeductibleCents], 10, 64)
	return InsuranceCard{
		PatientRef:      fields[FieldPatientRef],
		MemberID:        fields[FieldMemberID],
		Payer:           fields[FieldPayer],
		PlanName:        fields[FieldPlanName],
		CoveragePercent: coverage,
		DeductibleCents: deductible,
	}
}

// Fields encodes the card back into record fields.
func (c InsuranceCard) Fields() FieldMap {
	return FieldMap{
		FieldPatientRef:      c.PatientRef,
		FieldMemberID:        c.MemberID,
		FieldPayer:           c.Payer,
		FieldPlanName:        c.PlanName,
		FieldCoveragePercent: strconv.Itoa(c.CoveragePercent),
		FieldDeductibleCents: strconv.FormatInt(c.DeductibleCents, 10),
	}
}
