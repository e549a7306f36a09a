package test

import (
	"context"

	"github.com/polkiloo/authgate/internal/domain/model"
)

// AuthFacadeStub simulates credential facade interactions.
type AuthFacadeStub struct {
	SignUpFn func(context.Context, string, string) (*model.User, error)
	LoginFn  func(context.Context, string, string) (*model.User, error)
}

// SignUp returns a fresh user unless overridden.
func (s AuthFacadeStub) SignUp(ctx context.Context, email, password string) (*model.User, error) {
	if s.SignUpFn != nil {
		return s.SignUpFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email}, nil
}

// Login returns a stored user unless overridden.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.User, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email}, nil
}

// HealthFacadeStub reports configured health.
type HealthFacadeStub struct {
	Err error
}

// Ping returns the configured error.
func (s HealthFacadeStub) Ping(context.Context) error {
	return s.Err
}

// ServiceFacadeStub aggregates facade dependencies for HTTP layer tests.
type ServiceFacadeStub struct {
	AuthFacadeStub
	HealthFacadeStub
}

// HealthCheckerStub counts health probes against the store.
type HealthCheckerStub struct {
	Err   error
	Calls int
}

// HealthCheck records the call and returns the configured error.
func (s *HealthCheckerStub) HealthCheck(context.Context) error {
	s.Calls++
	return s.Err
}
