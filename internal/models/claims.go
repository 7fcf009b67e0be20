package models

import (
	"github.com/dgrijalva/jwt-go"
)

// Claims carries the authenticated principal extracted from the access token.
// User identifiers come from the external identity provider and are opaque
// strings, not local row ids.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.StandardClaims
}
