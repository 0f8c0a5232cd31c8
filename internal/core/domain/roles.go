package domain

import "errors"

// Role is the closed set of user roles known to the POS.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
)

// ReservedUsername is the shared account every cashier authenticates under.
// It is forced onto cashier records and rejected for admin/manager records.
const ReservedUsername = "cashier"

var ErrRoleUnrecognized = errors.New("role not recognized")

// roleDestinations maps each role allowed into the admin views to its
// landing path after login.
var roleDestinations = map[Role]string{
	RoleAdmin:   "/admin/dashboard",
	RoleManager: "/manager-home",
}

// RouteForRole resolves the post-login destination for a role. It is total
// over the closed role set: any role without a destination (including
// cashier, which uses a separate passcode flow) yields ErrRoleUnrecognized
// and must not proceed into a protected view.
func RouteForRole(role Role) (string, error) {
	dest, ok := roleDestinations[role]
	if !ok {
		return "", ErrRoleUnrecognized
	}
	return dest, nil
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCashier:
		return true
	}
	return false
}

// UsesPasscode reports whether the role authenticates with a 6-digit
// numeric passcode instead of a username/password pair.
func (r Role) UsesPasscode() bool {
	return r == RoleCashier
}
