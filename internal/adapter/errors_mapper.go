package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/mvoronin/clinic-sync/models"
)

// mapHTTPError converts a non-2xx response into a sentinel-wrapped error.
// 409 and 422 bodies are decoded into their rich error types so callers
// can inspect the server's current record and validation messages.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		var cr models.ConflictResponse
		if err := json.Unmarshal(resp.Body(), &cr); err != nil {
			return fmt.Errorf("%w: %s", ErrVersionConflict, body)
		}
		return &ConflictError{CurrentVersion: cr.CurrentVersion, CurrentRecord: cr.CurrentRecord}
	case http.StatusUnprocessableEntity:
		var vr models.ValidationResponse
		if err := json.Unmarshal(resp.Body(), &vr); err != nil || len(vr.Errors) == 0 {
			return &ValidationError{Messages: []string{body}}
		}
		return &ValidationError{Messages: vr.Errors}
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: http %d", ErrUnavailable, resp.StatusCode())
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
