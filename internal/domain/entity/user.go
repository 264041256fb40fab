package entity

import (
	"time"
)

// User is the aggregate root for the account domain. Login secrets live on
// the Credential record, never here.
type User struct {
	ID                string
	Name              string
	ProfilePictureURL *string
	PersonalStatement *string
	Points            int
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
	LastLogin         *time.Time
}
