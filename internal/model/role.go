package model

// Role is the account role. It is a closed set: only the values below are
// ever stored or accepted in tokens.
type Role string

const (
	// RoleAdmin may manage brokers and read every customer.
	RoleAdmin Role = "ADMIN"
	// RoleBroker may manage only the customers it owns.
	RoleBroker Role = "BROKER"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleBroker
}
