/*
Package clientsdk provides a typed HTTP client for the clientdir service.

Every clientdir response body is a uniform envelope:

	{ "status": "success"|"error", "message": "...", "data": ..., "metadata": {...} }

The SDK unwraps that envelope for you: success payloads are decoded into
typed records, and error envelopes become *APIError values carrying the HTTP
status, message, and machine-readable detail codes.

	sdk := clientsdk.New("http://localhost:8080")

	created, err := sdk.CreateClient(ctx, clientsdk.CreateClientRequest{
		Name:  "John Doe",
		Email: "john.doe@example.com",
	})

	page, pagination, err := sdk.ListClients(ctx, clientsdk.ListClientsOptions{Limit: 20})

	if err := sdk.DeleteClient(ctx, created.ID); err != nil {
		var apiErr *clientsdk.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			// already gone
		}
	}
*/
package clientsdk
