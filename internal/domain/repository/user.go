package repository

import (
	"context"

	"github.com/polkiloo/authgate/internal/domain/model"
)

// UserRepository is the credential store boundary.
//
// FindByEmail matches the email exactly; callers normalize first. It returns
// errors.ErrNotFound when no record exists. Create returns errors.ErrAlreadyExists
// when the unique email constraint rejects the insert. Any other failure is an
// *errors.StoreError.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)
}
