package constants

import "time"

// Service-level timeouts
const (
	DefaultTimeout     = 10 * time.Second
	CalendarAPITimeout = 30 * time.Second
)

// Database pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// OAuth / Google Calendar integration
const (
	GoogleCalendarAPIBase = "https://www.googleapis.com/calendar/v3"
	GoogleCalendarID      = "primary"
	CalendarTimeZone      = "Asia/Dhaka"

	// Google does not report refresh token expiry; assume a long fixed window.
	RefreshTokenValidity = 180 * 24 * time.Hour

	// The state nonce is single-use and short-lived.
	OAuthStateTTL = 10 * time.Minute
)

// Redis key prefixes
const (
	RedisKeyOAuthState = "oauth_state:"
)

// JWT token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Reminder jobs
const (
	QueueReminders        = "reminders"
	TaskTypeEmailReminder = "reminder:email"
	TaskTypeWebPush       = "reminder:webpush"

	ReminderLeadTime = 1 * time.Minute
)
