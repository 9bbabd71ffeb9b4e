package clientsdk

import "fmt"

// APIError represents an error envelope returned by the clientdir service.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Message is the human-readable envelope message
	Message string

	// Details holds the stable reason codes from metadata.details,
	// e.g. {"reason": "email_conflict"}
	Details map[string]string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if reason, ok := e.Details["reason"]; ok {
		return fmt.Sprintf("clientdir: %s (%s)", e.Message, reason)
	}
	return fmt.Sprintf("clientdir: %s", e.Message)
}

// Reason returns the stable reason code, or "" when the server sent none.
func (e *APIError) Reason() string {
	return e.Details["reason"]
}
