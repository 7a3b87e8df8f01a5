package users

import (
	"fmt"
	"strings"
)

// Role is fixed at signup.
type Role string

const (
	RolePromoter Role = "PROMOTER"
	RoleComedian Role = "COMEDIAN"
)

// Roles lists every role, in display order.
var Roles = []Role{RolePromoter, RoleComedian}

func (r Role) IsValid() bool {
	switch r {
	case RolePromoter, RoleComedian:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// ParseRole accepts a role name in any letter case.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role %q: must be one of %v", s, Roles)
	}
	return role, nil
}

// IsValidRole reports whether s names a role.
func IsValidRole(s string) bool {
	_, err := ParseRole(s)
	return err == nil
}
