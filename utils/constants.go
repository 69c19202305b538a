// File: utils/constants.go
package utils

// RevokedTokenPrefix is the prefix used for Redis revoked-token keys.
const RevokedTokenPrefix = "auth:revoked:"

// Context keys set by the auth and logging middleware.
const (
	ContextUserID    = "userID"
	ContextTokenHash = "tokenHash"
	ContextTokenExp  = "tokenExp"
	ContextLogger    = "logger"
	ContextRequestID = "requestID"
)
