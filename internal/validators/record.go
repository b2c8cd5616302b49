package validators

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mvoronin/clinic-sync/models"
)

// recordValidator enforces per-collection business rules on record field
// maps before they are persisted. It is shared by the server (guarding every
// create and update) and the client forms (rejecting bad input before it is
// queued).
type recordValidator struct{}

// NewRecordValidator constructs a [Validator] for [models.Record] values.
func NewRecordValidator() Validator {
	return &recordValidator{}
}

// Validate implements [Validator]. value must be a [models.Record]; the
// optional fields argument restricts validation to the named fields, which
// the edit forms use to validate a single input as it changes.
//
// A rule violation is reported as a *[ValidationErrors] carrying one message
// per violated rule. Structural problems (wrong value type, unknown
// collection) are reported as ordinary errors.
func (v *recordValidator) Validate(_ context.Context, value any, fields ...string) error {
	record, ok := value.(models.Record)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	var rules []fieldRule
	switch record.Collection {
	case models.CollectionInsuranceCards:
		rules = insuranceCardRules
	case models.CollectionPayments:
		rules = paymentRules
	case models.CollectionOutcomeMeasures:
		rules = outcomeMeasureRules
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCollection, record.Collection)
	}

	var messages []string
	for _, rule := range rules {
		if len(fields) > 0 && !containsField(fields, rule.field) {
			continue
		}
		if msg := rule.check(record.Fields[rule.field]); msg != "" {
			messages = append(messages, msg)
		}
	}

	if len(messages) > 0 {
		return &ValidationErrors{Messages: messages}
	}

	return nil
}

type fieldRule struct {
	field string
	check func(value string) string
}

var insuranceCardRules = []fieldRule{
	{models.FieldMemberID, required("member ID")},
	{models.FieldPayer, required("payer")},
	{models.FieldCoveragePercent, intInRange("coverage", 0, 100)},
	{models.FieldDeductibleCents, optionalNonNegativeInt("deductible")},
}

var paymentRules = []fieldRule{
	{models.FieldPatientRef, required("patient reference")},
	{models.FieldAmountCents, positiveInt("amount")},
	{models.FieldMethod, oneOf("payment method", "cash", "card", "check", "insurance")},
	{models.FieldPostedOn, date("posted date")},
}

var outcomeMeasureRules = []fieldRule{
	{models.FieldPatientRef, required("patient reference")},
	{models.FieldInstrument, required("instrument")},
	{models.FieldScore, intInRange("score", 0, 100)},
	{models.FieldRecordedOn, date("recorded date")},
}

func required(label string) func(string) string {
	return func(value string) string {
		if value == "" {
			return label + " is required"
		}
		return ""
	}
}

func intInRange(label string, min, max int64) func(string) string {
	return func(value string) string {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return label + " must be a whole number"
		}
		if n < min || n > max {
			return fmt.Sprintf("%s must be between %d and %d", label, min, max)
		}
		return ""
	}
}

func positiveInt(label string) func(string) string {
	return func(value string) string {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return label + " must be a whole number"
		}
		if n <= 0 {
			return label + " must be positive"
		}
		return ""
	}
}

func optionalNonNegativeInt(label string) func(string) string {
	return func(value string) string {
		if value == "" {
			return ""
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return label + " must be a whole number"
		}
		if n < 0 {
			return label + " cannot be negative"
		}
		return ""
	}
}

func oneOf(label string, allowed ...string) func(string) string {
	return func(value string) string {
		for _, a := range allowed {
			if value == a {
				return ""
			}
		}
		return label + " is not recognised"
	}
}

func date(label string) func(string) string {
	return func(value string) string {
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return label + " must be a date in YYYY-MM-DD form"
		}
		return ""
	}
}

func containsField(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
