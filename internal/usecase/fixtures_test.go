package usecase

import (
	"time"

	"property_manager/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	fixedNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	landlordViewer      = entities.Viewer{UserID: "landlord-1", Role: entities.RoleLandlord}
	otherLandlordViewer = entities.Viewer{UserID: "landlord-2", Role: entities.RoleLandlord}
	tenantViewer        = entities.Viewer{UserID: "tenant-user-1", Role: entities.RoleTenant}
	otherTenantViewer   = entities.Viewer{UserID: "tenant-user-2", Role: entities.RoleTenant}
	adminViewer         = entities.Viewer{UserID: "admin-1", Role: entities.RoleAdmin}
)

func testLease() entities.Lease {
	return entities.Lease{
		ID:            "lease-1",
		UnitID:        "unit-1",
		TenantID:      "tenant-1",
		StartDate:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Rent:          decimal.RequireFromString("1500.00"),
		Status:        entities.LeaseStatusActive,
		LandlordID:    "landlord-1",
		TenantUserID:  "tenant-user-1",
		UnitNumber:    "4B",
		PropertyTitle: "Maple Court",
	}
}

func testPayment(status entities.PaymentStatus) entities.Payment {
	return entities.Payment{
		ID:      "pay-1",
		LeaseID: "lease-1",
		Amount:  decimal.RequireFromString("1500.00"),
		DueDate: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		Status:  status,
	}
}
