package utils

import (
	"crypto/rand"
	"encoding/base64"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateStateNonce returns an opaque value for the OAuth state parameter.
// Long enough to be unguessable; the nonce is bound server-side to a user.
func GenerateStateNonce() string {
	nonce, err := gonanoid.Generate(idAlphabet, 32)
	if err != nil {
		return GenerateRandomString(32)
	}
	return nonce
}

// GenerateRandomString generates a cryptographically secure random string.
func GenerateRandomString(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		id, _ := gonanoid.Generate(idAlphabet, length)
		return id
	}
	return base64.URLEncoding.EncodeToString(bytes)[:length]
}
