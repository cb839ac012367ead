package entity

import (
	"time"

	"legalconnect/core/entity"

	"github.com/google/uuid"
)

// OAuthCalendarToken is the per-user Google Calendar credential. One row per
// user; only the OAuth service writes it.
type OAuthCalendarToken struct {
	UserID        uuid.UUID  `db:"user_id" json:"user_id"`
	AccessToken   string     `db:"access_token" json:"-"`
	RefreshToken  *string    `db:"refresh_token" json:"-"`
	AccessExpiry  *time.Time `db:"access_expiry" json:"access_expiry"`
	RefreshExpiry *time.Time `db:"refresh_expiry" json:"refresh_expiry"`
	entity.BaseEntity
}

// AccessExpired reports whether the access token's expiry has passed. A
// missing expiry is treated as not expired, matching the stored-verbatim
// policy for tokens Google issued without an expires_in.
func (t *OAuthCalendarToken) AccessExpired(now time.Time) bool {
	return t.AccessExpiry != nil && t.AccessExpiry.Before(now)
}

// RefreshExpired reports whether the assumed refresh window has passed.
func (t *OAuthCalendarToken) RefreshExpired(now time.Time) bool {
	return t.RefreshExpiry != nil && t.RefreshExpiry.Before(now)
}
