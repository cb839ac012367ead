package dto

import "time"

// AuthorizationURLResponse carries the Google consent-screen URL
type AuthorizationURLResponse struct {
	URL string `json:"url"`
}

// CallbackResultResponse is the outcome of the OAuth callback: where to send
// the browser next
type CallbackResultResponse struct {
	RedirectURL string `json:"redirect_url"`
}

// TokenStatusResponse reports whether the user holds a usable calendar
// connection
type TokenStatusResponse struct {
	Connected    bool       `json:"connected"`
	AccessExpiry *time.Time `json:"access_expiry,omitempty"`
}
