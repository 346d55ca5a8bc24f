package auth

import (
	"context"

	"beautymatch/models"
)

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	ID           string      `json:"id"`
	Token        string      `json:"token"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	Role         models.Role `json:"role"`
	ProfileImage string      `json:"profileImage,omitempty"`
}

// AuthService is the identity boundary: account creation, credential
// checks and session revocation.
type AuthService interface {
	Register(ctx context.Context, email, password, name string, role models.Role) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Logout(ctx context.Context, accountID string) error
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)
	UpdateFCMToken(ctx context.Context, accountID, token string) error
}
