package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType   = errors.New("unsupported type for validation")
	ErrUnknownCollection = errors.New("unknown collection for validation")
)

// ValidationErrors collects the user-facing messages produced by a failed
// validation. The HTTP layer serialises Messages into the 422 response body
// verbatim, so every message must make sense to an end user.
type ValidationErrors struct {
	Messages []string
}

func (e *ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// AsValidationErrors unwraps err into a *ValidationErrors if it carries one.
func AsValidationErrors(err error) (*ValidationErrors, bool) {
	var ve *ValidationErrors
	ok := errors.As(err, &ve)
	return ve, ok
}
