package httpx

import "net/http"

// Envelope status tags. Every response body is one of the two envelope
// variants below, so callers can parse the body without inspecting the HTTP
// status code first.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metadata is the optional trailing block of an envelope. It serialises to an
// empty JSON object when nothing is set.
type Metadata struct {
	// Details carries machine-readable failure details on error envelopes.
	// These are stable reason codes, never raw error text.
	Details map[string]string `json:"details,omitempty"`

	// Pagination is present on paginated list responses.
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes the window a list response covers.
type Pagination struct {
	TotalCount   int64 `json:"total_count"`
	Page         int   `json:"page"`
	ItemsPerPage int   `json:"items_per_page"`
	HasMore      bool  `json:"has_more"`
}

// NewPagination derives page metadata from the requested window. limit must
// be positive; handlers clamp it before calling.
func NewPagination(limit, offset int, totalCount int64) Pagination {
	return Pagination{
		TotalCount:   totalCount,
		Page:         offset/limit + 1,
		ItemsPerPage: limit,
		HasMore:      int64(offset+limit) < totalCount,
	}
}

// SuccessEnvelope is the success variant of the uniform response body.
type SuccessEnvelope struct {
	Status   string   `json:"status"`
	Message  string   `json:"message"`
	Data     any      `json:"data"`
	Metadata Metadata `json:"metadata"`
}

// ErrorEnvelope is the error variant. It has no data field.
type ErrorEnvelope struct {
	Status   string   `json:"status"`
	Message  string   `json:"message"`
	Metadata Metadata `json:"metadata"`
}

// WriteSuccess writes a success envelope with the given payload.
func WriteSuccess(w http.ResponseWriter, code int, message string, data any) {
	WriteJSON(w, code, SuccessEnvelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// WritePage writes a success envelope for one page of a list, with
// pagination metadata attached.
func WritePage(w http.ResponseWriter, message string, data any, p Pagination) {
	WriteJSON(w, http.StatusOK, SuccessEnvelope{
		Status:   StatusSuccess,
		Message:  message,
		Data:     data,
		Metadata: Metadata{Pagination: &p},
	})
}

// WriteError writes an error envelope. details should hold stable reason
// codes; underlying errors belong in the logs, not the response.
func WriteError(w http.ResponseWriter, code int, message string, details map[string]string) {
	WriteJSON(w, code, ErrorEnvelope{
		Status:   StatusError,
		Message:  message,
		Metadata: Metadata{Details: details},
	})
}
