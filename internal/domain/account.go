package domain

import "time"

type Role string

const (
	RoleDonor     Role = "donor"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleVolunteer, RoleAdmin:
		return true
	}
	return false
}

// IsModerator reports whether the role may moderate content and override
// request states.
func (r Role) IsModerator() bool {
	return r == RoleAdmin || r == RoleVolunteer
}

type AccountStatus string

const (
	AccountStatusActive  AccountStatus = "active"
	AccountStatusBlocked AccountStatus = "blocked"
)

func (s AccountStatus) Valid() bool {
	return s == AccountStatusActive || s == AccountStatusBlocked
}

type Account struct {
	ID          int64         `json:"id"`
	Email       string        `json:"email"`
	Name        string        `json:"name"`
	AvatarURL   string        `json:"avatarUrl"`
	Role        Role          `json:"role"`
	Status      AccountStatus `json:"status"`
	BloodGroup  string        `json:"bloodGroup"`
	District    string        `json:"district"`
	Upazila     string        `json:"upazila"`
	CreatedAt   time.Time     `json:"createdAt"`
	LastLoginAt time.Time     `json:"lastLoginAt"`
}

// AccountPatch is a partial profile update. Nil fields are left untouched.
// Role, status and email are deliberately absent: those move only through
// AdminUpdate or not at all.
type AccountPatch struct {
	Name       *string `json:"name"`
	AvatarURL  *string `json:"avatarUrl"`
	BloodGroup *string `json:"bloodGroup"`
	District   *string `json:"district"`
	Upazila    *string `json:"upazila"`
}

func (p AccountPatch) Empty() bool {
	return p.Name == nil && p.AvatarURL == nil && p.BloodGroup == nil && p.District == nil && p.Upazila == nil
}
