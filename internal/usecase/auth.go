package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/polkiloo/authgate/internal/domain/errors"
	"github.com/polkiloo/authgate/internal/domain/model"
	"github.com/polkiloo/authgate/internal/domain/repository"
	pkgAuth "github.com/polkiloo/authgate/internal/pkg/auth"
)

// AuthUseCase runs the sign-up and login flows over the credential store.
type AuthUseCase struct {
	users     repository.UserRepository
	hasher    pkgAuth.PasswordHasher
	validator *CredentialsValidator
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, validator *CredentialsValidator) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, validator: validator}
}

// SignUp validates the credentials, rejects a taken email, hashes the password
// and stores the new user.
func (u *AuthUseCase) SignUp(ctx context.Context, email, password string) (*model.User, error) {
	creds, err := u.validator.Validate(email, password)
	if err != nil {
		return nil, err
	}

	_, err = u.users.FindByEmail(ctx, creds.Email)
	switch {
	case err == nil:
		return nil, domainErrors.ErrAlreadyExists
	case !errors.Is(err, domainErrors.ErrNotFound):
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := u.hasher.Hash(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// A concurrent sign-up may win between lookup and insert; the store's
	// unique constraint then reports ErrAlreadyExists.
	usr, err := u.users.Create(ctx, creds.Email, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return usr, nil
}

// Login validates the credentials and verifies the password against the stored hash.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*model.User, error) {
	creds, err := u.validator.Validate(email, password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := u.hasher.Compare(usr.PasswordHash, creds.Password); err != nil {
		if errors.Is(err, pkgAuth.ErrPasswordMismatch) {
			return nil, domainErrors.ErrInvalidPassword
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}

	return usr, nil
}
