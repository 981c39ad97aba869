// Package common contains shared constants, sentinel errors and small
// helpers used across bankcli components.
package common

// HTTP header names the gateway sets on outbound requests.
const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	RequestIDHeader     = "X-Request-ID"
)

// Keys of the local metadata table.
const (
	TokenKey        = "token"
	TokenSavedAtKey = "token_saved_at"
)
