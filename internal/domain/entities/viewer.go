package entities

import "strings"

type Role string

const (
	RoleLandlord Role = "LANDLORD"
	RoleTenant   Role = "TENANT"
	RoleAdmin    Role = "ADMIN"
)

func ParseRole(v string) (Role, bool) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(v))); r {
	case RoleLandlord, RoleTenant, RoleAdmin:
		return r, true
	}
	return "", false
}

// Viewer is the authenticated caller of an operation.
type Viewer struct {
	UserID string
	Role   Role
}

func (v Viewer) IsAdmin() bool    { return v.Role == RoleAdmin }
func (v Viewer) IsLandlord() bool { return v.Role == RoleLandlord }
func (v Viewer) IsTenant() bool   { return v.Role == RoleTenant }
