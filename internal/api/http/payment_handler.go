package http

import (
	"net/http"
	"strings"

	"bloodlink-backend/internal/domain"
	"bloodlink-backend/internal/policy"
	"bloodlink-backend/internal/service"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
	authz      *policy.Authorizer
}

func NewPaymentHandler(paymentSvc service.PaymentService, authz *policy.Authorizer) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc, authz: authz}
}

type createIntentRequest struct {
	AmountCents int64 `json:"amountCents"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionPaymentCreate, ""); err != nil {
		writeError(w, err)
		return
	}

	var req createIntentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	secret, err := h.paymentSvc.CreateIntent(r.Context(), req.AmountCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, createIntentResponse{ClientSecret: secret})
}

type savePaymentRequest struct {
	Email         string `json:"email"`
	AmountCents   int64  `json:"amountCents"`
	TransactionID string `json:"transactionId"`
}

// SavePayment appends a completed donation to the ledger. The ledger row is
// recorded under the caller's identity: the body email must match the
// authenticated account.
func (h *PaymentHandler) SavePayment(w http.ResponseWriter, r *http.Request) {
	caller := CallerEmail(r.Context())
	if err := h.authz.Authorize(r.Context(), caller, policy.ActionPaymentCreate, ""); err != nil {
		writeError(w, err)
		return
	}

	var req savePaymentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Email != "" && !strings.EqualFold(req.Email, caller) {
		writeError(w, domain.ErrForbidden)
		return
	}

	rec, err := h.paymentSvc.Record(r.Context(), caller, req.TransactionID, req.AmountCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := h.authz.Authorize(r.Context(), CallerEmail(r.Context()), policy.ActionPaymentList, ""); err != nil {
		writeError(w, err)
		return
	}

	sortDesc := r.URL.Query().Get("sort") != "asc"
	records, err := h.paymentSvc.List(r.Context(), sortDesc)
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []domain.PaymentRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}
