package constants

// Account roles. A role is fixed at registration and gates route access.
const (
	RoleCustomer = "customer"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Account status values. Registration writes the lowercase default; the
// admin activate/suspend endpoints write the capitalized values.
const (
	UserStatusDefault   = "active"
	UserStatusActive    = "Active"
	UserStatusSuspended = "Suspended"
)

// ValidRole reports whether the given role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleEmployee, RoleAdmin:
		return true
	default:
		return false
	}
}
