package models

import "strconv"

// OutcomeMeasure is the typed view over an outcome-measure record's
// fields: one administration of a scored clinical instrument.
type OutcomeMeasure struct {
	PatientRef string
	Instrument string
	Score      int
	RecordedOn string // ISO 8601 date (YYYY-MM-DD)
	Notes      string
}

// OutcomeMeasureFromFields decodes an outcome measure from record fields.
func OutcomeMeasureFromFields(fields FieldMap) OutcomeMeasure {
	score, _ := strconv.Atoi(fields[FieldScore])
	return OutcomeMeasure{
		PatientRef: fields[FieldPatientRef],
		Instrument: fields[FieldInstrument],
		Score:      score,
		RecordedOn: fields[FieldRecordedOn],
		Notes:      fields[FieldNotes],
	}
}

// Fields encodes the measure back into record fields.
func (m OutcomeMeasure) Fields() FieldMap {
	return FieldMap{
		FieldPatientRef: m.PatientRef,
		FieldInstrument: m.Instrument,
		FieldScore:      strconv.Itoa(m.Score),
		FieldRecordedOn: m.RecordedOn,
		FieldNotes:      m.Notes,
	}
}
