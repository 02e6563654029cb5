// Package auth issues and validates JWT access tokens carrying the
// framework's identity claims.
package auth
