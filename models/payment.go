package models

import "strconv"

// PaymentMethod enumerates accepted payment methods.
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "cash"
	PaymentCard      PaymentMethod = "card"
	PaymentInsurance PaymentMethod = "insurance"
	PaymentTransfer  PaymentMethod = "transfer"
)

// Payment is the typed view over a payment record's fields.
type Payment struct {
	PatientRef  string
	AmountCents int64
	Method      PaymentMethod
	PostedOn    string // ISO 8601 date (YYYY-MM-DD)
	Notes       string
}

// PaymentFromFields decodes a payment from record fields.
func PaymentFromFields(fields FieldMap) Payment {
	amount, _ := strconv.ParseInt(fields[FieldAmountCents], 10, 64)
	return Payment{
		PatientRef:  fields[FieldPatientRef],
		AmountCents: amount,
		Method:      PaymentMethod(fields[FieldMethod]),
		PostedOn:    fields[FieldPostedOn],
		Notes:       fields[FieldNotes],
	}
}

// Fields encodes the payment back into record fields.
func (p Payment) Fields() FieldMap {
	return FieldMap{
		FieldPatientRef:  p.PatientRef,
		FieldAmountCents: strconv.FormatInt(p.AmountCents, 10),
		FieldMethod:      string(p.Method),
		FieldPostedOn:    p.PostedOn,
		FieldNotes:       p.Notes,
	}
}
