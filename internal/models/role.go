package models

import "fmt"

// Role is the closed set of account roles known to the system.
type Role string

const (
	RoleStudent Role = "student" // Wallet holder, pays vendors
	RoleVendor  Role = "vendor"  // Accepts payments, accumulates sales
	RoleAdmin   Role = "admin"   // Read-only aggregate view
)

// ParseRole converts a raw string into a Role.
// Unknown values are rejected rather than passed through.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleVendor, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
