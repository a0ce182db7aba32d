package gateclient

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError represents a non-success response from the service. The Message
// field carries whichever envelope the endpoint uses ("message" in both the
// auth and guard envelopes).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gatehouse: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("gatehouse: %s (status %d)", e.Message, e.StatusCode)
}

// apiErrorFrom builds an APIError from a response body. Both the
// `{success,message}` and `{message}` envelopes decode into ErrorResponse.
func apiErrorFrom(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}
