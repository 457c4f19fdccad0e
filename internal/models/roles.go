package models

type UserRole string

const (
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleUser       UserRole = "USER"
	UserRoleStoreOwner UserRole = "STORE_OWNER"
)

// Valid reports whether the role is a member of the closed enumeration.
// Role checks go through this and the constants above, never raw strings.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUser, UserRoleStoreOwner:
		return true
	default:
		return false
	}
}
