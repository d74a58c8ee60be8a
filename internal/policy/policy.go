// Package policy decides whether a resolved identity may perform an action.
// All rules live in one declarative table evaluated by a single Authorize
// function; handlers never hand-roll role checks.
package policy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bloodlink-backend/internal/domain"
)

type Action string

const (
	ActionAccountRead   Action = "account.read"
	ActionAccountUpdate Action = "account.update"

	ActionRequestCreate   Action = "request.create"
	ActionRequestRead     Action = "request.read"
	ActionRequestClaim    Action = "request.claim"
	ActionRequestUpdate   Action = "request.update"
	ActionRequestDelete   Action = "request.delete"
	ActionRequestListMine Action = "request.list_mine"
	ActionRequestStats    Action = "request.stats"

	ActionAdminDashboard    Action = "admin.dashboard"
	ActionAdminListUsers    Action = "admin.list_users"
	ActionAdminListRequests Action = "admin.list_requests"
	ActionAdminUpdateUser   Action = "admin.update_user"

	ActionBlogCreate Action = "blog.create"
	ActionBlogUpdate Action = "blog.update"
	ActionBlogDelete Action = "blog.delete"
	ActionBlogStats  Action = "blog.stats"

	ActionPaymentCreate Action = "payment.create"
	ActionPaymentList   Action = "payment.list"
)

// Rule is one row of the policy table. An action passes when the caller owns
// the resource (Owner) or when the caller's stored role is in Roles; either
// branch alone is sufficient. An action with neither branch set is
// unreachable and always denied.
type Rule struct {
	Owner bool
	Roles []domain.Role
}

var anyActiveAccount = []domain.Role{domain.RoleDonor, domain.RoleVolunteer, domain.RoleAdmin}

var rules = map[Action]Rule{
	ActionAccountRead:   {Owner: true},
	ActionAccountUpdate: {Owner: true},

	ActionRequestCreate: {Roles: anyActiveAccount},
	ActionRequestRead:   {Roles: anyActiveAccount},
	ActionRequestClaim:  {Roles: anyActiveAccount},
	ActionRequestUpdate:   {Owner: true, Roles: []domain.Role{domain.RoleAdmin, domain.RoleVolunteer}},
	ActionRequestDelete:   {Owner: true, Roles: []domain.Role{domain.RoleAdmin}},
	ActionRequestListMine: {Owner: true},
	ActionRequestStats:    {Owner: true},

	ActionAdminDashboard:    {Roles: []domain.Role{domain.RoleAdmin, domain.RoleVolunteer}},
	ActionAdminListUsers:    {Roles: []domain.Role{domain.RoleAdmin}},
	ActionAdminListRequests: {Roles: []domain.Role{domain.RoleAdmin, domain.RoleVolunteer}},
	ActionAdminUpdateUser:   {Roles: []domain.Role{domain.RoleAdmin}},

	ActionBlogCreate: {Roles: []domain.Role{domain.RoleAdmin, domain.RoleVolunteer}},
	ActionBlogUpdate: {Roles: []domain.Role{domain.RoleAdmin, domain.RoleVolunteer}},
	ActionBlogDelete: {Roles: []domain.Role{domain.RoleAdmin}},
	ActionBlogStats:  {Roles: []domain.Role{domain.RoleAdmin, domain.RoleVolunteer}},

	ActionPaymentCreate: {Roles: anyActiveAccount},
	ActionPaymentList:   {Roles: []domain.Role{domain.RoleAdmin}},
}

// AccountSource is the slice of the account registry the authorizer needs.
type AccountSource interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

type Authorizer struct {
	accounts AccountSource
}

func NewAuthorizer(accounts AccountSource) *Authorizer {
	return &Authorizer{accounts: accounts}
}

// Authorize checks callerEmail against the rule for action. ownerEmail is
// the resource owner for ownership rules and may be empty for actions that
// have none. The stored account is looked up fresh on every role-gated call
// so a role revoked mid-session takes effect immediately.
func (a *Authorizer) Authorize(ctx context.Context, callerEmail string, action Action, ownerEmail string) error {
	if callerEmail == "" {
		return domain.ErrUnauthenticated
	}

	rule, ok := rules[action]
	if !ok {
		return fmt.Errorf("action %s: %w", action, domain.ErrForbidden)
	}

	if rule.Owner && ownerEmail != "" && strings.EqualFold(callerEmail, ownerEmail) {
		return nil
	}

	if len(rule.Roles) > 0 {
		acct, err := a.accounts.GetByEmail(ctx, callerEmail)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("no account for %s: %w", callerEmail, domain.ErrForbidden)
			}
			return err
		}
		if acct.Status != domain.AccountStatusActive {
			return fmt.Errorf("account %s is %s: %w", callerEmail, acct.Status, domain.ErrForbidden)
		}
		for _, role := range rule.Roles {
			if acct.Role == role {
				return nil
			}
		}
	}

	return fmt.Errorf("action %s: %w", action, domain.ErrForbidden)
}
