package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side record behind an opaque session cookie.
// Its lifetime is rolling: every validated request pushes ExpiresAt
// forward by the configured TTL.
type Session struct {
	// Token is the opaque identifier carried by the session cookie.
	Token uuid.UUID `json:"-"`

	// UserID is the identifier of the authenticated user.
	UserID int64 `json:"-"`

	// ExpiresAt is the moment after which the session is no longer valid.
	// Expiry is evaluated lazily on each authenticated request.
	ExpiresAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
