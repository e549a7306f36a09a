package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/authgate/internal/domain/errors"
	"github.com/polkiloo/authgate/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests. It is safe for
// concurrent use and enforces email uniqueness the way the database does.
type UserRepositoryStub struct {
	mu sync.Mutex

	Users map[string]*model.User
	Next  int64

	FindErr   error
	CreateErr error

	FindCalls   int
	CreateCalls int
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.CreateCalls++
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.Next++
	s.Users[email] = user
	return user, nil
}

// FindByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.FindCalls++
	if s.FindErr != nil {
		return nil, s.FindErr
	}
	if user, ok := s.Users[email]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Len reports the number of stored users.
func (s *UserRepositoryStub) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Users)
}
