package app

import (
	"context"

	"github.com/polkiloo/authgate/internal/domain/model"
	"github.com/polkiloo/authgate/internal/usecase"
)

// HealthChecker probes the credential store.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// CredentialsFacade exposes the service operations consumed by the HTTP layer.
type CredentialsFacade struct {
	auth   *usecase.AuthUseCase
	health HealthChecker
}

func NewCredentialsFacade(auth *usecase.AuthUseCase, health HealthChecker) *CredentialsFacade {
	return &CredentialsFacade{auth: auth, health: health}
}

func (f *CredentialsFacade) SignUp(ctx context.Context, email, password string) (*model.User, error) {
	return f.auth.SignUp(ctx, email, password)
}

func (f *CredentialsFacade) Login(ctx context.Context, email, password string) (*model.User, error) {
	return f.auth.Login(ctx, email, password)
}

func (f *CredentialsFacade) Ping(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
