package model

import "fmt"

// Role is the closed set of authorization labels a User can carry.
// Anything outside this set is rejected at the API boundary.
type Role string

const (
	RoleUser     Role = "user"
	RoleAdmin    Role = "admin"
	RoleApproved Role = "approved"
	RoleBanned   Role = "banned"
)

// ParseRole maps a raw string onto the Role enum. The empty string
// falls back to RoleUser, matching the persisted column default.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RoleUser, nil
	case RoleUser, RoleAdmin, RoleApproved, RoleBanned:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	HashedPassword string `json:"-"` // Not exposed
	Role           Role   `json:"role"`
}
