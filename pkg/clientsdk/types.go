package clientsdk

// ClientRecord is the wire form of a client directory record.
type ClientRecord struct {
	// ID is the database-assigned identifier
	ID int64 `json:"id"`

	// Name is the client's display name
	Name string `json:"name"`

	// Email is unique across all clients
	Email string `json:"email"`

	// CreatedAt is the creation timestamp in RFC3339 form
	CreatedAt string `json:"created_at"`
}

// CreateClientRequest is the body for POST /clients.
type CreateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateClientRequest is the body for PUT /clients/{id}.
type UpdateClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListClientsOptions controls pagination for ListClients.
type ListClientsOptions struct {
	// Limit is the page size; the server default applies when zero
	Limit int

	// Offset is the number of records to skip
	Offset int
}

// HealthResponse is the body of the /livez and /readyz endpoints
// (readyz includes the additional Checks field).
type HealthResponse struct {
	// Status is the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime as a duration string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks reports dependency status, only on /readyz
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
