package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/harborlane/clientdir/internal/clientdir/domain"
	"github.com/harborlane/clientdir/internal/clientdir/service"
	"github.com/harborlane/clientdir/pkg/clientsdk"
	"github.com/harborlane/clientdir/pkg/httpx"
	"github.com/harborlane/clientdir/pkg/slogx"
)

// ClientsHandler handles the client record CRUD endpoints.
type ClientsHandler struct {
	ClientService *service.ClientService
}

func toRecord(c domain.Client) clientsdk.ClientRecord {
	return clientsdk.ClientRecord{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

// parseID extracts the numeric {id} path value. A non-numeric id is a
// malformed request, not a missing record.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func validateClientBody(name, email string) (string, bool) {
	if strings.TrimSpace(name) == "" {
		return "name", false
	}
	if strings.TrimSpace(email) == "" {
		return "email", false
	}
	return "", true
}

// HandleCreate handles POST /clients
//
//	@Summary		Create Client
//	@Description	Creates a new client record with a server-assigned id and creation timestamp.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clientsdk.CreateClientRequest	true	"Client creation request"
//	@Success		201		{object}	httpx.SuccessEnvelope			"created record"
//	@Failure		400		{object}	httpx.ErrorEnvelope				"invalid body or duplicate email"
//	@Router			/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req clientsdk.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON in request body",
			map[string]string{"reason": "invalid_json"})
		return
	}

	if field, ok := validateClientBody(req.Name, req.Email); !ok {
		httpx.WriteError(w, http.StatusBadRequest, field+" is required",
			map[string]string{"reason": "missing_field", "field": field})
		return
	}

	created, err := h.ClientService.CreateClient(ctx, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			httpx.WriteError(w, http.StatusBadRequest, "email already in use",
				map[string]string{"reason": "email_conflict"})
			return
		}
		log.Error("create client failed", "error", err)
		httpx.WriteError(w, http.StatusBadRequest, "failed to create client",
			map[string]string{"reason": "create_failed"})
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, "Client created successfully", toRecord(created))
}

// HandleList handles GET /clients
//
//	@Summary		List Clients
//	@Description	Returns one page of client records ordered by insertion, with pagination metadata.
//	@Tags			Clients
//	@Produce		json
//	@Param			limit	query		int					false	"Page size (default 10, max 100)"
//	@Param			offset	query		int					false	"Records to skip (default 0)"
//	@Success		200		{object}	httpx.SuccessEnvelope	"page of records plus metadata.pagination"
//	@Failure		400		{object}	httpx.ErrorEnvelope		"malformed query parameters"
//	@Failure		500		{object}	httpx.ErrorEnvelope		"store failure"
//	@Router			/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	limit, offset, ok := parseListParams(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "limit and offset must be non-negative integers",
			map[string]string{"reason": "invalid_query"})
		return
	}

	clients, total, err := h.ClientService.ListClients(ctx, limit, offset)
	if err != nil {
		log.Error("list clients failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to retrieve clients",
			map[string]string{"reason": "list_failed"})
		return
	}

	records := make([]clientsdk.ClientRecord, len(clients))
	for i, c := range clients {
		records[i] = toRecord(c)
	}

	httpx.WritePage(w, "Clients retrieved successfully", records,
		httpx.NewPagination(limit, offset, total))
}

func parseListParams(r *http.Request) (limit, offset int, ok bool) {
	limit = service.DefaultPageSize
	offset = 0

	q := r.URL.Query()
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, 0, false
		}
		if v > 0 {
			limit = v
		}
	}
	if raw := q.Get("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, 0, false
		}
		offset = v
	}

	limit = min(limit, service.MaxPageSize)
	return limit, offset, true
}

// HandleGet handles GET /clients/{id}
//
//	@Summary		Get Client
//	@Description	Returns a single client record by id.
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path		int						true	"Client id"
//	@Success		200	{object}	httpx.SuccessEnvelope	"record"
//	@Failure		400	{object}	httpx.ErrorEnvelope		"malformed id"
//	@Failure		404	{object}	httpx.ErrorEnvelope		"no such client"
//	@Failure		500	{object}	httpx.ErrorEnvelope		"store failure"
//	@Router			/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := parseID(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "client id must be a positive integer",
			map[string]string{"reason": "invalid_id"})
		return
	}

	client, err := h.ClientService.GetClient(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Client not found",
				map[string]string{"reason": "not_found"})
			return
		}
		log.Error("get client failed", "error", err, "client_id", id)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to retrieve client",
			map[string]string{"reason": "get_failed"})
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Client retrieved successfully", toRecord(client))
}

// HandleUpdate handles PUT /clients/{id}
//
//	@Summary		Update Client
//	@Description	Updates the name and email of an existing client. id and created_at are immutable.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Client id"
//	@Param			request	body		clientsdk.UpdateClientRequest	true	"New name and email"
//	@Success		200		{object}	httpx.SuccessEnvelope		"updated record"
//	@Failure		400		{object}	httpx.ErrorEnvelope			"invalid body or duplicate email"
//	@Failure		404		{object}	httpx.ErrorEnvelope			"no such client"
//	@Failure		500		{object}	httpx.ErrorEnvelope			"store failure"
//	@Router			/clients/{id} [put].
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := parseID(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "client id must be a positive integer",
			map[string]string{"reason": "invalid_id"})
		return
	}

	var req clientsdk.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON in request body",
			map[string]string{"reason": "invalid_json"})
		return
	}

	if field, ok := validateClientBody(req.Name, req.Email); !ok {
		httpx.WriteError(w, http.StatusBadRequest, field+" is required",
			map[string]string{"reason": "missing_field", "field": field})
		return
	}

	updated, err := h.ClientService.UpdateClient(ctx, id, req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Client not found",
				map[string]string{"reason": "not_found"})
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteError(w, http.StatusBadRequest, "email already in use",
				map[string]string{"reason": "email_conflict"})
		default:
			log.Error("update client failed", "error", err, "client_id", id)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to update client",
				map[string]string{"reason": "update_failed"})
		}
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "Client updated successfully", toRecord(updated))
}

// HandleDelete handles DELETE /clients/{id}
//
//	@Summary		Delete Client
//	@Description	Deletes a client record by id.
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path	int	true	"Client id"
//	@Success		204	"deleted, no body"
//	@Failure		400	{object}	httpx.ErrorEnvelope	"malformed id"
//	@Failure		404	{object}	httpx.ErrorEnvelope	"no such client"
//	@Failure		500	{object}	httpx.ErrorEnvelope	"store failure"
//	@Router			/clients/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := parseID(r)
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "client id must be a positive integer",
			map[string]string{"reason": "invalid_id"})
		return
	}

	if err := h.ClientService.DeleteClient(ctx, id); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Client not found",
				map[string]string{"reason": "not_found"})
			return
		}
		log.Error("delete client failed", "error", err, "client_id", id)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to delete client",
			map[string]string{"reason": "delete_failed"})
		return
	}

	// 204 carries no envelope
	w.WriteHeader(http.StatusNoContent)
}
