package handlers

import (
	"context"

	"github.com/polkiloo/authgate/internal/domain/model"
)

// AuthFacade describes the credential operations required by handlers.
type AuthFacade interface {
	SignUp(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

// HealthFacade reports whether backing services are reachable.
type HealthFacade interface {
	Ping(ctx context.Context) error
}

// ServiceFacade aggregates the full set of operations used across handlers.
type ServiceFacade interface {
	AuthFacade
	HealthFacade
}
