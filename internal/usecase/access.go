package usecase

import (
	"property_manager/internal/domain/entities"
)

// Access rules for leases and everything hanging off them (payments,
// checkouts). Every read or write on a lease-scoped resource goes through one
// of these checks before any data is returned.

// authorizeLeaseRead lets the lease's tenant, the owning landlord and admins through.
func authorizeLeaseRead(v entities.Viewer, l entities.Lease) error {
	switch {
	case v.IsAdmin():
		return nil
	case v.IsLandlord() && v.UserID != "" && l.LandlordID == v.UserID:
		return nil
	case v.IsTenant() && v.UserID != "" && l.TenantUserID == v.UserID:
		return nil
	}
	return ErrAccessDenied
}

// authorizeLeaseWrite is reserved to the owning landlord and admins.
func authorizeLeaseWrite(v entities.Viewer, l entities.Lease) error {
	if v.IsAdmin() {
		return nil
	}
	if v.IsLandlord() && v.UserID != "" && l.LandlordID == v.UserID {
		return nil
	}
	return ErrAccessDenied
}

func authorizePropertyWrite(v entities.Viewer, landlordID string) error {
	if v.IsAdmin() {
		return nil
	}
	if v.IsLandlord() && v.UserID != "" && landlordID == v.UserID {
		return nil
	}
	return ErrAccessDenied
}

func requireRole(v entities.Viewer, roles ...entities.Role) error {
	if v.UserID == "" {
		return ErrAccessDenied
	}
	for _, r := range roles {
		if v.Role == r {
			return nil
		}
	}
	return ErrAccessDenied
}
