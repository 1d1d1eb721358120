package entities

import "time"

// Tenant is the renter profile bound to an authenticated user id.
type Tenant struct {
	ID        string
	UserID    string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}
