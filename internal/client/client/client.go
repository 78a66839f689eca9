package client

import (
	"context"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
)

// Client is the contract of the finance API as used by the pages.
type Client interface {
	Login(ctx context.Context, form models.LoginForm) (*models.AuthResponse, error)
	Register(ctx context.Context, form models.RegisterForm) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, token string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, token string, form models.TargetsForm) (*models.Profile, error)
}
