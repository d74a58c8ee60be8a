package http

import (
	"net/http"

	"bloodlink-backend/internal/domain"
	"bloodlink-backend/internal/policy"
	"bloodlink-backend/internal/service"

	"github.com/gorilla/mux"
)

type AccountHandler struct {
	accountSvc service.AccountService
	authz      *policy.Authorizer
}

func NewAccountHandler(accountSvc service.AccountService, authz *policy.Authorizer) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc, authz: authz}
}

// AddUser registers an account after the identity provider has created the
// credential. Public: the account record is what later authorizes the token.
func (h *AccountHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var acct domain.Account
	if err := decodeBody(r, &acct); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.accountSvc.Register(r.Context(), &acct)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *AccountHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionAccountRead, email); err != nil {
		writeError(w, err)
		return
	}

	acct, err := h.accountSvc.GetByEmail(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

func (h *AccountHandler) GetUserRole(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionAccountRead, email); err != nil {
		writeError(w, err)
		return
	}

	role, err := h.accountSvc.GetRole(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]domain.Role{"role": role})
}

// SearchDonors is public: finding a compatible donor is the point of the
// site. All three filters are required.
func (h *AccountHandler) SearchDonors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	donors, err := h.accountSvc.SearchDonors(r.Context(), q.Get("bloodGroup"), q.Get("district"), q.Get("upazila"))
	if err != nil {
		writeError(w, err)
		return
	}
	if donors == nil {
		donors = []domain.Account{}
	}
	writeJSON(w, http.StatusOK, donors)
}

func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionAccountUpdate, email); err != nil {
		writeError(w, err)
		return
	}

	var patch domain.AccountPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}

	modified, err := h.accountSvc.UpdateProfile(r.Context(), email, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"modified": modified})
}

func (h *AccountHandler) TouchLastLogin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionAccountUpdate, email); err != nil {
		writeError(w, err)
		return
	}

	if err := h.accountSvc.TouchLastLogin(r.Context(), email); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"modified": true})
}
