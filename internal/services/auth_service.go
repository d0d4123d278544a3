package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azhar512/tassiecar/internal/helpers"
	"github.com/Azhar512/tassiecar/internal/models"
	"github.com/supabase-community/gotrue-go/types"
)

// ErrNotAdmin: the credentials were valid but the account carries no admin
// role. The session is revoked immediately so a non-admin never holds an
// authenticated token from the admin login surface.
var ErrNotAdmin = errors.New("access denied: admin privileges required")

type AuthService struct {
	repo models.AuthRepo
}

func NewAuthService(repo models.AuthRepo) *AuthService {
	return &AuthService{repo: repo}
}

// Login authenticates against the backend's auth subsystem and enforces
// the admin role using the shared predicate. The client-side gate is a UX
// convenience; row-level policy on the backend remains the trust boundary.
func (as *AuthService) Login(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	resp, err := as.repo.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if !helpers.IsAdminMetadata(resp.User.UserMetadata) {
		_ = as.repo.SignOut(ctx, resp.AccessToken)
		return nil, ErrNotAdmin
	}
	return resp, nil
}

func (as *AuthService) Refresh(ctx context.Context, refreshToken string) (*types.TokenResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is required")
	}
	return as.repo.RefreshToken(ctx, refreshToken)
}

func (as *AuthService) Logout(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}
	return as.repo.SignOut(ctx, accessToken)
}
