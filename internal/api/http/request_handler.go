package http

import (
	"net/http"
	"strconv"

	"bloodlink-backend/internal/domain"
	"bloodlink-backend/internal/policy"
	"bloodlink-backend/internal/service"

	"github.com/gorilla/mux"
)

const defaultRequestPageSize = 5

type RequestHandler struct {
	requestSvc service.RequestService
	accountSvc service.AccountService
	authz      *policy.Authorizer
}

func NewRequestHandler(requestSvc service.RequestService, accountSvc service.AccountService, authz *policy.Authorizer) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc, accountSvc: accountSvc, authz: authz}
}

func requestID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

// Create opens a new donation request. The requester identity comes from the
// verified caller, never from the payload.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := CallerEmail(r.Context())
	if err := h.authz.Authorize(r.Context(), caller, policy.ActionRequestCreate, ""); err != nil {
		writeError(w, err)
		return
	}

	var req domain.DonationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	acct, err := h.accountSvc.GetByEmail(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	req.RequesterEmail = acct.Email
	req.RequesterName = acct.Name

	created, err := h.requestSvc.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListPublic serves the open donation board. No identity required.
func (h *RequestHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	status := domain.RequestStatus(r.URL.Query().Get("status"))
	reqs, err := h.requestSvc.ListByStatus(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.DonationRequest{}
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionRequestRead, ""); err != nil {
		writeError(w, err)
		return
	}

	id, err := requestID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := h.requestSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionRequestListMine, email); err != nil {
		writeError(w, err)
		return
	}

	status := domain.RequestStatus(r.URL.Query().Get("status"))
	page, limit := parsePagination(r, defaultRequestPageSize)

	reqs, total, err := h.requestSvc.ListByRequester(r.Context(), email, status, page, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.DonationRequest{}
	}
	writeJSON(w, http.StatusOK, pagedResponse{Items: reqs, Total: total, TotalPages: totalPages(total, limit)})
}

// Claim is the donate action: the caller volunteers as the donor for a
// pending request. Arbitration of concurrent claims lives in the storage
// layer; a lost race surfaces as a 400, not a 500.
func (h *RequestHandler) Claim(w http.ResponseWriter, r *http.Request) {
	caller := CallerEmail(r.Context())
	if err := h.authz.Authorize(r.Context(), caller, policy.ActionRequestClaim, ""); err != nil {
		writeError(w, err)
		return
	}

	id, err := requestID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := h.requestSvc.Claim(r.Context(), id, caller)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// Update is the owner/moderator edit, including forced status changes.
func (h *RequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	stored, err := h.requestSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionRequestUpdate, stored.RequesterEmail); err != nil {
		writeError(w, err)
		return
	}

	var patch domain.RequestPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}

	modified, err := h.requestSvc.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"modified": modified})
}

func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	stored, err := h.requestSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionRequestDelete, stored.RequesterEmail); err != nil {
		writeError(w, err)
		return
	}

	if err := h.requestSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *RequestHandler) StatusCounts(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionRequestStats, email); err != nil {
		writeError(w, err)
		return
	}

	stats, err := h.requestSvc.StatusCounts(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
