package domain

import "time"

// Role is the platform-wide role of a user.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

// User is the identity view consumed by the onboarding engine.
// Authentication and session handling live elsewhere; the engine only
// reads roles and, on approval, promotes the applicant to vendor.
type User struct {
	ID       string
	Username string
	Email    string
	Role     Role
	IsAdmin  bool
	IsVendor bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanReview reports whether the user may perform admin decisions on
// applications. Edge authorization is expected to have run already;
// the engine re-asserts this defensively.
func (u User) CanReview() bool {
	return u.IsAdmin || u.Role == RoleAdmin
}
