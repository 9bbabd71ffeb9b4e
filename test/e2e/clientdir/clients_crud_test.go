package clientdir_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/harborlane/clientdir/pkg/clientsdk"
	"github.com/stretchr/testify/require"
)

// TestClientLifecycle exercises the full create, read, update, delete cycle
// against a running container.
func TestClientLifecycle(t *testing.T) {
	baseURL, cleanup := setupClientdirContainer(t)
	defer cleanup()

	sdk := clientsdk.New(baseURL)

	// Create
	created := mustCreateClient(t, sdk, "Ada Lovelace", "ada@example.com")
	require.Equal(t, "Ada Lovelace", created.Name)
	require.Equal(t, "ada@example.com", created.Email)

	createdAt, err := time.Parse(time.RFC3339, created.CreatedAt)
	require.NoError(t, err, "created_at should be RFC3339")
	require.WithinDuration(t, time.Now().UTC(), createdAt, time.Minute)

	// Read back
	fetched, err := sdk.GetClient(t.Context(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created, fetched)

	// Update
	updated, err := sdk.UpdateClient(t.Context(), created.ID, clientsdk.UpdateClientRequest{
		Name:  "Ada King",
		Email: "ada.king@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Ada King", updated.Name)
	require.Equal(t, "ada.king@example.com", updated.Email)
	require.Equal(t, created.CreatedAt, updated.CreatedAt, "created_at must survive updates")

	// Delete
	require.NoError(t, sdk.DeleteClient(t.Context(), created.ID))

	// Gone
	_, err = sdk.GetClient(t.Context(), created.ID)
	var apiErr *clientsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.StatusCode)

	t.Logf("Full lifecycle completed for client %d", created.ID)
}

// TestDuplicateEmailRejected verifies the unique email constraint surfaces as
// a client error with a stable reason code, not a raw database message.
func TestDuplicateEmailRejected(t *testing.T) {
	baseURL, cleanup := setupClientdirContainer(t)
	defer cleanup()

	sdk := clientsdk.New(baseURL)

	mustCreateClient(t, sdk, "First", "shared@example.com")

	_, err := sdk.CreateClient(t.Context(), clientsdk.CreateClientRequest{
		Name:  "Second",
		Email: "shared@example.com",
	})

	var apiErr *clientsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
	require.Equal(t, "email_conflict", apiErr.Reason())
	require.NotContains(t, apiErr.Message, "UNIQUE", "database internals must not leak")
}

// TestUpdateToTakenEmailRejected verifies updating one client to another
// client's email is rejected without modifying either record.
func TestUpdateToTakenEmailRejected(t *testing.T) {
	baseURL, cleanup := setupClientdirContainer(t)
	defer cleanup()

	sdk := clientsdk.New(baseURL)

	first := mustCreateClient(t, sdk, "First", "first@example.com")
	second := mustCreateClient(t, sdk, "Second", "second@example.com")

	_, err := sdk.UpdateClient(t.Context(), second.ID, clientsdk.UpdateClientRequest{
		Name:  "Second",
		Email: first.Email,
	})

	var apiErr *clientsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
	require.Equal(t, "email_conflict", apiErr.Reason())

	// Neither record changed
	got, err := sdk.GetClient(t.Context(), second.ID)
	require.NoError(t, err)
	require.Equal(t, "second@example.com", got.Email)
}

// TestListClientsPagination seeds a known number of records and walks the
// pages, checking metadata on each.
func TestListClientsPagination(t *testing.T) {
	baseURL, cleanup := setupClientdirContainer(t)
	defer cleanup()

	sdk := clientsdk.New(baseURL)

	const total = 7
	for i := 0; i < total; i++ {
		mustCreateClient(t, sdk,
			fmt.Sprintf("Client %d", i),
			fmt.Sprintf("client%d@example.com", i))
	}

	// First page
	records, page, err := sdk.ListClients(t.Context(), clientsdk.ListClientsOptions{Limit: 3})
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.EqualValues(t, total, page.TotalCount)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 3, page.ItemsPerPage)
	require.True(t, page.HasMore)

	// Last page is a partial page
	records, page, err = sdk.ListClients(t.Context(), clientsdk.ListClientsOptions{Limit: 3, Offset: 6})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 3, page.Page)
	require.False(t, page.HasMore)

	// Insertion order is preserved across pages
	all, _, err := sdk.ListClients(t.Context(), clientsdk.ListClientsOptions{Limit: 100})
	require.NoError(t, err)
	require.Len(t, all, total)
	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i].ID, all[i-1].ID, "listing should follow insertion order")
	}
}

// TestValidationErrors verifies malformed requests are rejected with field
// level reasons.
func TestValidationErrors(t *testing.T) {
	baseURL, cleanup := setupClientdirContainer(t)
	defer cleanup()

	sdk := clientsdk.New(baseURL)

	tests := []struct {
		name    string
		request clientsdk.CreateClientRequest
		field   string
	}{
		{"missing name", clientsdk.CreateClientRequest{Email: "a@example.com"}, "name"},
		{"missing email", clientsdk.CreateClientRequest{Name: "A"}, "email"},
		{"blank name", clientsdk.CreateClientRequest{Name: "   ", Email: "a@example.com"}, "name"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sdk.CreateClient(t.Context(), tc.request)

			var apiErr *clientsdk.APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, 400, apiErr.StatusCode)
			require.Equal(t, "missing_field", apiErr.Reason())
			require.Equal(t, tc.field, apiErr.Details["field"])
		})
	}
}

// TestDeleteIsIdempotentlyReported verifies a second delete of the same id
// reports not found rather than succeeding silently.
func TestDeleteIsIdempotentlyReported(t *testing.T) {
	baseURL, cleanup := setupClientdirContainer(t)
	defer cleanup()

	sdk := clientsdk.New(baseURL)

	record := mustCreateClient(t, sdk, "Ephemeral", "ephemeral@example.com")

	require.NoError(t, sdk.DeleteClient(t.Context(), record.ID))

	err := sdk.DeleteClient(t.Context(), record.ID)
	var apiErr *clientsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, 404, apiErr.StatusCode)
}
