// Package entity contains the core business objects of the project.
package entity

// Role represents the organisational role a user holds.
type Role string

const (
	// RoleEmployee indicates a regular staff member.
	RoleEmployee Role = "employee"
	// RoleManager indicates a staff member who approves requests for others.
	RoleManager Role = "manager"
	// RoleAdmin indicates an administrator of the service itself.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts a string into a Role, reporting whether it is known.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
