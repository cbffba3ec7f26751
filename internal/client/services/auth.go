package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/agroassist/internal/client/models"
	"github.com/dmitrijs2005/agroassist/internal/client/tokenstore"
)

// AuthService covers registration, login and the current user's profile.
// Register and Login persist the returned access token; Logout and
// IsAuthenticated are local and never touch the network.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.ProfileUpdateResponse, error)
	CheckToken(ctx context.Context) (*models.TokenCheck, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
}

type authService struct {
	api    Requester
	tokens tokenstore.Store
}

func NewAuthService(r Requester, tokens tokenstore.Store) AuthService {
	return &authService{api: r, tokens: tokens}
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	return a.authenticate(ctx, "/auth/register", req)
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	return a.authenticate(ctx, "/auth/login", req)
}

func (a *authService) authenticate(ctx context.Context, path string, body any) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.api.Post(ctx, path, body, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken != "" {
		if err := a.tokens.Set(ctx, resp.AccessToken); err != nil {
			return nil, fmt.Errorf("failed to save access token: %w", err)
		}
	}
	return &resp, nil
}

func (a *authService) GetProfile(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := a.api.Get(ctx, "/auth/profile", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (a *authService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.ProfileUpdateResponse, error) {
	var resp models.ProfileUpdateResponse
	if err := a.api.Put(ctx, "/auth/profile", update, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *authService) CheckToken(ctx context.Context) (*models.TokenCheck, error) {
	var resp models.TokenCheck
	if err := a.api.Get(ctx, "/auth/check-token", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.tokens.Clear(ctx)
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return a.tokens.IsPresent(ctx)
}
