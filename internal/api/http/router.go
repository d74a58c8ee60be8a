package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Account *AccountHandler
	Request *RequestHandler
	Blog    *BlogHandler
	Payment *PaymentHandler
	Admin   *AdminHandler
}

// NewRouter wires the full REST surface. Every route runs under the request
// timeout; authentication is per-route so public reads stay public.
func NewRouter(h Handlers, m *Middleware) *mux.Router {
	router := mux.NewRouter()
	router.Use(m.WithTimeout)

	public := func(fn http.HandlerFunc) http.Handler { return fn }
	auth := func(fn http.HandlerFunc) http.Handler { return m.RequireAuth(fn) }
	optional := func(fn http.HandlerFunc) http.Handler { return m.OptionalAuth(fn) }

	// Accounts
	router.Handle("/add-user", public(h.Account.AddUser)).Methods("POST")
	router.Handle("/user", auth(h.Account.GetUser)).Methods("GET")
	router.Handle("/user-role", auth(h.Account.GetUserRole)).Methods("GET")
	router.Handle("/donors", public(h.Account.SearchDonors)).Methods("GET")
	router.Handle("/user/update/{email}", auth(h.Account.UpdateProfile)).Methods("PUT")
	router.Handle("/users/{email}/last-login", auth(h.Account.TouchLastLogin)).Methods("PATCH")

	// Donation requests
	router.Handle("/donation-requests", auth(h.Request.Create)).Methods("POST")
	router.Handle("/donation-requests", public(h.Request.ListPublic)).Methods("GET")
	router.Handle("/donation-requests/{id:[0-9]+}", auth(h.Request.Get)).Methods("GET")
	router.Handle("/my-donation-requests/user", auth(h.Request.ListMine)).Methods("GET")
	router.Handle("/donation-requests/{id:[0-9]+}/donate", auth(h.Request.Claim)).Methods("PATCH")
	router.Handle("/donation-requests/{id:[0-9]+}", auth(h.Request.Update)).Methods("PATCH")
	router.Handle("/donation-requests/{id:[0-9]+}", auth(h.Request.Delete)).Methods("DELETE")
	router.Handle("/request-status-count", auth(h.Request.StatusCounts)).Methods("GET")

	// Admin
	router.Handle("/admin/dashboard-stats", auth(h.Admin.DashboardStats)).Methods("GET")
	router.Handle("/admin/users", auth(h.Admin.ListUsers)).Methods("GET")
	router.Handle("/admin/donation-requests", auth(h.Admin.ListRequests)).Methods("GET")
	router.Handle("/admin/users/{id:[0-9]+}", auth(h.Admin.UpdateUser)).Methods("PATCH")

	// Blogs. The stats route registers before {id} so "stats" never parses
	// as an identifier.
	router.Handle("/blogs/stats", auth(h.Blog.Stats)).Methods("GET")
	router.Handle("/blogs", auth(h.Blog.Create)).Methods("POST")
	router.Handle("/blogs", optional(h.Blog.List)).Methods("GET")
	router.Handle("/blogs/{id:[0-9]+}", optional(h.Blog.Get)).Methods("GET")
	router.Handle("/blogs/{id:[0-9]+}", auth(h.Blog.Update)).Methods("PATCH")
	router.Handle("/blogs/{id:[0-9]+}", auth(h.Blog.Delete)).Methods("DELETE")

	// Payments
	router.Handle("/api/create-payment-intent", auth(h.Payment.CreateIntent)).Methods("POST")
	router.Handle("/api/save-payment", auth(h.Payment.SavePayment)).Methods("POST")
	router.Handle("/fundraiser-payments", auth(h.Payment.List)).Methods("GET")

	return router
}
