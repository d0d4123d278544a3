package helpers

import (
	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims mirrors the claims Supabase issues for a signed-in user.
// The role that matters for the admin surface lives in user_metadata, the
// same place the dashboard writes it.
type CustomClaims struct {
	Role         string         `json:"role"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
	AppMetadata  struct {
		Provider  string   `json:"provider"`
		Providers []string `json:"providers"`
	} `json:"app_metadata"`
	jwt.RegisteredClaims
}

const AdminRole = "admin"

// MetadataRole returns the application-level role claim, or "" when the
// session carries none.
func (c *CustomClaims) MetadataRole() string {
	if c.UserMetadata == nil {
		return ""
	}
	role, _ := c.UserMetadata["role"].(string)
	return role
}

// IsAdmin is the single role predicate shared by the access-gate middleware
// and the login flow. Keep the check here so the two call sites cannot
// drift apart.
func (c *CustomClaims) IsAdmin() bool {
	return c.MetadataRole() == AdminRole
}

func (c *CustomClaims) HasRole(role string) bool {
	return c.MetadataRole() == role
}

// IsAdminMetadata applies the same predicate to raw user metadata, for the
// login path where we hold a gotrue user rather than parsed JWT claims.
func IsAdminMetadata(metadata map[string]any) bool {
	if metadata == nil {
		return false
	}
	role, _ := metadata["role"].(string)
	return role == AdminRole
}
