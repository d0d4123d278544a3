package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/supabase-community/gotrue-go/types"
)

type AuthRepo interface {
	SignIn(ctx context.Context, email, password string) (*types.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*types.TokenResponse, error)
	SignOut(ctx context.Context, accessToken string) error
}

func (su *SupabaseRepo) SignIn(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	resp, err := su.client.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		// gotrue error bodies are noisy; keep the message usable for a login
		// form without leaking which part of the credentials failed.
		if strings.Contains(err.Error(), "invalid_grant") || strings.Contains(err.Error(), "Invalid login credentials") {
			return nil, fmt.Errorf("invalid email or password")
		}
		return nil, fmt.Errorf("failed to authenticate: %v", err)
	}
	return resp, nil
}

func (su *SupabaseRepo) RefreshToken(ctx context.Context, refreshToken string) (*types.TokenResponse, error) {
	resp, err := su.client.Auth.RefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %v", err)
	}
	return resp, nil
}

func (su *SupabaseRepo) SignOut(ctx context.Context, accessToken string) error {
	if err := su.client.Auth.WithToken(accessToken).Logout(); err != nil {
		return fmt.Errorf("failed to sign out: %v", err)
	}
	return nil
}
