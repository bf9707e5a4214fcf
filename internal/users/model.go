package users

import "time"

// User is a persisted user. Email is unique across users, enforced by
// the service-layer pre-check. Timestamps never leave the server.
type User struct {
	ID        string
	Email     string
	FirstName string
	CreatedAt time.Time
	UpdatedAt time.Time
}
