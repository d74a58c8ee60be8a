package http

import (
	"net/http"
	"strconv"

	"bloodlink-backend/internal/domain"
	"bloodlink-backend/internal/policy"
	"bloodlink-backend/internal/service"

	"github.com/gorilla/mux"
)

type BlogHandler struct {
	blogSvc    service.BlogService
	accountSvc service.AccountService
	authz      *policy.Authorizer
}

func NewBlogHandler(blogSvc service.BlogService, accountSvc service.AccountService, authz *policy.Authorizer) *BlogHandler {
	return &BlogHandler{blogSvc: blogSvc, accountSvc: accountSvc, authz: authz}
}

func blogID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

// callerRole resolves the stored role for an optionally-authenticated
// caller. Anonymous callers and callers without an account read as donors:
// the lowest visibility tier. Client-supplied role parameters are ignored.
func (h *BlogHandler) callerRole(r *http.Request) domain.Role {
	email := CallerEmail(r.Context())
	if email == "" {
		return domain.RoleDonor
	}
	role, err := h.accountSvc.GetRole(r.Context(), email)
	if err != nil {
		// Unknown accounts and store trouble fall back to the least
		// visibility rather than failing a public read.
		return domain.RoleDonor
	}
	return role
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := CallerEmail(r.Context())
	if err := h.authz.Authorize(r.Context(), caller, policy.ActionBlogCreate, ""); err != nil {
		writeError(w, err)
		return
	}

	var blog domain.Blog
	if err := decodeBody(r, &blog); err != nil {
		writeError(w, err)
		return
	}
	blog.AuthorEmail = caller

	created, err := h.blogSvc.Create(r.Context(), &blog)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.BlogStatus(r.URL.Query().Get("status"))
	blogs, err := h.blogSvc.ListVisible(r.Context(), h.callerRole(r), status)
	if err != nil {
		writeError(w, err)
		return
	}
	if blogs == nil {
		blogs = []domain.Blog{}
	}
	writeJSON(w, http.StatusOK, blogs)
}

func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := blogID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	blog, err := h.blogSvc.Get(r.Context(), id, h.callerRole(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blog)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionBlogUpdate, ""); err != nil {
		writeError(w, err)
		return
	}

	id, err := blogID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var patch domain.BlogPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}

	modified, err := h.blogSvc.SetFields(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"modified": modified})
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionBlogDelete, ""); err != nil {
		writeError(w, err)
		return
	}

	id, err := blogID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.blogSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *BlogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionBlogStats, ""); err != nil {
		writeError(w, err)
		return
	}

	stats, err := h.blogSvc.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
