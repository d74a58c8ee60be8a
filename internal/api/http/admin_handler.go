package http

import (
	"net/http"
	"strconv"

	"bloodlink-backend/internal/domain"
	"bloodlink-backend/internal/policy"
	"bloodlink-backend/internal/service"

	"github.com/gorilla/mux"
)

const defaultAdminPageSize = 5

type AdminHandler struct {
	adminSvc   service.AdminService
	accountSvc service.AccountService
	requestSvc service.RequestService
	authz      *policy.Authorizer
}

func NewAdminHandler(adminSvc service.AdminService, accountSvc service.AccountService, requestSvc service.RequestService, authz *policy.Authorizer) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, accountSvc: accountSvc, requestSvc: requestSvc, authz: authz}
}

func (h *AdminHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionAdminDashboard, ""); err != nil {
		writeError(w, err)
		return
	}

	stats, err := h.adminSvc.DashboardStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionAdminListUsers, ""); err != nil {
		writeError(w, err)
		return
	}

	status := domain.AccountStatus(r.URL.Query().Get("status"))
	page, pageSize := parsePagination(r, defaultAdminPageSize)

	users, total, err := h.accountSvc.AdminList(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	if users == nil {
		users = []domain.Account{}
	}
	writeJSON(w, http.StatusOK, pagedResponse{
		Items:      users,
		Total:      total,
		TotalPages: totalPages(total, pageSize),
	})
}

func (h *AdminHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionAdminListRequests, ""); err != nil {
		writeError(w, err)
		return
	}

	status := domain.RequestStatus(r.URL.Query().Get("status"))
	page, pageSize := parsePagination(r, defaultRequestPageSize)

	requests, total, err := h.requestSvc.ListAll(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.DonationRequest{}
	}
	writeJSON(w, http.StatusOK, pagedResponse{
		Items:      requests,
		Total:      total,
		TotalPages: totalPages(total, pageSize),
	})
}

type adminUserPatch struct {
	Role   *domain.Role          `json:"role"`
	Status *domain.AccountStatus `json:"status"`
}

func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionAdminUpdateUser, ""); err != nil {
		writeError(w, err)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}

	var patch adminUserPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}

	modified, err := h.accountSvc.AdminUpdate(r.Context(), id, patch.Role, patch.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"modified": modified})
}
