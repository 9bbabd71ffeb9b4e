package clientsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/harborlane/clientdir/pkg/httpx"
)

// Client is a typed HTTP client for the clientdir service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client with a sensible default timeout.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// envelope mirrors the server's uniform response body with the payload left
// raw so each call site can decode its own shape.
type envelope struct {
	Status   string          `json:"status"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Metadata httpx.Metadata  `json:"metadata"`
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// decodeEnvelope reads the response body, returning the envelope on success
// or a typed *APIError when the server reported a failure.
func decodeEnvelope(resp *http.Response) (*envelope, error) {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// 204 carries no envelope at all
	if resp.StatusCode == http.StatusNoContent {
		return &envelope{Status: httpx.StatusSuccess}, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unexpected response (HTTP %d): %w", resp.StatusCode, err)
	}

	if env.Status != httpx.StatusSuccess {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
			Details:    env.Metadata.Details,
		}
	}

	return &env, nil
}

// CreateClient creates a new client record.
func (c *Client) CreateClient(ctx context.Context, req CreateClientRequest) (ClientRecord, error) {
	resp, err := c.do(ctx, http.MethodPost, "/clients", req)
	if err != nil {
		return ClientRecord{}, err
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return ClientRecord{}, err
	}

	var record ClientRecord
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return ClientRecord{}, fmt.Errorf("failed to decode created client: %w", err)
	}
	return record, nil
}

// ListClients fetches one page of client records plus pagination metadata.
func (c *Client) ListClients(ctx context.Context, opts ListClientsOptions) ([]ClientRecord, httpx.Pagination, error) {
	q := url.Values{}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		q.Set("offset", strconv.Itoa(opts.Offset))
	}

	path := "/clients"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, httpx.Pagination{}, err
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return nil, httpx.Pagination{}, err
	}

	var records []ClientRecord
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, httpx.Pagination{}, fmt.Errorf("failed to decode client list: %w", err)
	}

	var pagination httpx.Pagination
	if env.Metadata.Pagination != nil {
		pagination = *env.Metadata.Pagination
	}
	return records, pagination, nil
}

// GetClient fetches a single client record by id.
func (c *Client) GetClient(ctx context.Context, id int64) (ClientRecord, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/clients/%d", id), nil)
	if err != nil {
		return ClientRecord{}, err
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return ClientRecord{}, err
	}

	var record ClientRecord
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return ClientRecord{}, fmt.Errorf("failed to decode client: %w", err)
	}
	return record, nil
}

// UpdateClient replaces the name and email of an existing client.
func (c *Client) UpdateClient(ctx context.Context, id int64, req UpdateClientRequest) (ClientRecord, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/clients/%d", id), req)
	if err != nil {
		return ClientRecord{}, err
	}

	env, err := decodeEnvelope(resp)
	if err != nil {
		return ClientRecord{}, err
	}

	var record ClientRecord
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return ClientRecord{}, fmt.Errorf("failed to decode updated client: %w", err)
	}
	return record, nil
}

// DeleteClient removes a client record by id.
func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/clients/%d", id), nil)
	if err != nil {
		return err
	}

	_, err = decodeEnvelope(resp)
	return err
}

// GetLiveness calls the /livez endpoint.
func (c *Client) GetLiveness(ctx context.Context) (HealthResponse, error) {
	return c.getHealth(ctx, "/livez")
}

// GetReadiness calls the /readyz endpoint.
func (c *Client) GetReadiness(ctx context.Context) (HealthResponse, error) {
	return c.getHealth(ctx, "/readyz")
}

func (c *Client) getHealth(ctx context.Context, path string) (HealthResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return HealthResponse{}, err
	}
	defer resp.Body.Close()

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return HealthResponse{}, fmt.Errorf("failed to decode health response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return health, &APIError{
			StatusCode: resp.StatusCode,
			Message:    "service not ready",
		}
	}
	return health, nil
}
