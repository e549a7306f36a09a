package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	domainErrors "github.com/polkiloo/authgate/internal/domain/errors"
	testhelpers "github.com/polkiloo/authgate/internal/test"
)

func newAuthUseCase(t *testing.T, repo *testhelpers.UserRepositoryStub, hasher testhelpers.HasherStub) *AuthUseCase {
	t.Helper()
	v, err := NewCredentialsValidator()
	if err != nil {
		t.Fatalf("validator: %v", err)
	}
	return NewAuthUseCase(repo, hasher, v)
}

func TestAuthUseCaseSignUpSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(t, repo, testhelpers.HasherStub{})

	ctx := context.Background()
	user, err := uc.SignUp(ctx, " Alice@Example.com", "longenough")
	if err != nil {
		t.Fatalf("sign up returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	stored, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected user stored under normalized email: %v", err)
	}
	if stored.PasswordHash != "hash:longenough" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseSignUpDuplicateIsCaseInsensitive(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(t, repo, testhelpers.HasherStub{})

	ctx := context.Background()
	if _, err := uc.SignUp(ctx, "A@B.com", "longenough"); err != nil {
		t.Fatalf("unexpected error on first sign up: %v", err)
	}
	if _, err := uc.SignUp(ctx, "a@b.com", "other12345"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if repo.CreateCalls != 1 {
		t.Fatalf("expected duplicate to be rejected before insert, got %d creates", repo.CreateCalls)
	}

	stored, _ := repo.FindByEmail(ctx, "a@b.com")
	if stored.PasswordHash != "hash:longenough" {
		t.Fatalf("original record must be intact, got %q", stored.PasswordHash)
	}
}

func TestAuthUseCaseSignUpValidationStopsEarly(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(t, repo, testhelpers.HasherStub{})

	_, err := uc.SignUp(context.Background(), "not-an-email", "longenough")
	var vErr *domainErrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.FindCalls != 0 || repo.CreateCalls != 0 {
		t.Fatalf("store must not be touched on invalid input")
	}
}

func TestAuthUseCaseSignUpStoreFailures(t *testing.T) {
	storeErr := &domainErrors.StoreError{Op: "find user by email", Err: errors.New("connection refused")}

	repo := testhelpers.NewUserRepositoryStub()
	repo.FindErr = storeErr
	uc := newAuthUseCase(t, repo, testhelpers.HasherStub{})
	if _, err := uc.SignUp(context.Background(), "a@b.com", "longenough"); !errors.Is(err, storeErr) {
		t.Fatalf("expected lookup failure to propagate, got %v", err)
	}

	repo = testhelpers.NewUserRepositoryStub()
	repo.CreateErr = storeErr
	uc = newAuthUseCase(t, repo, testhelpers.HasherStub{})
	_, err := uc.SignUp(context.Background(), "a@b.com", "longenough")
	if !errors.Is(err, storeErr) || errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected insert failure to propagate, got %v", err)
	}

	repo = testhelpers.NewUserRepositoryStub()
	repo.CreateErr = domainErrors.ErrAlreadyExists
	uc = newAuthUseCase(t, repo, testhelpers.HasherStub{})
	if _, err := uc.SignUp(context.Background(), "a@b.com", "longenough"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected unique violation on insert to map to ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseSignUpHashFailure(t *testing.T) {
	hashErr := errors.New("hash boom")
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(t, repo, testhelpers.HasherStub{HashFn: func(string) (string, error) { return "", hashErr }})

	if _, err := uc.SignUp(context.Background(), "a@b.com", "longenough"); !errors.Is(err, hashErr) {
		t.Fatalf("expected hash failure, got %v", err)
	}
	if repo.CreateCalls != 0 {
		t.Fatal("nothing must be persisted when hashing fails")
	}
}

func TestAuthUseCaseConcurrentSignUpSingleWinner(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(t, repo, testhelpers.HasherStub{})

	const attempts = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.SignUp(context.Background(), "race@example.com", "longenough")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domainErrors.ErrAlreadyExists):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 || conflicts != attempts-1 {
		t.Fatalf("expected exactly one winner, got %d successes and %d conflicts", successes, conflicts)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected one stored user, got %d", repo.Len())
	}
}

func TestAuthUseCaseLogin(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(t, repo, testhelpers.HasherStub{})

	ctx := context.Background()
	if _, err := uc.SignUp(ctx, "carol@example.com", "longenough"); err != nil {
		t.Fatalf("sign up failed: %v", err)
	}

	if _, err := uc.Login(ctx, "carol@example.com", "wrong-password"); !errors.Is(err, domainErrors.ErrInvalidPassword) {
		t.Fatalf("expected invalid password error, got %v", err)
	}

	if _, err := uc.Login(ctx, "nobody@example.com", "longenough"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}

	user, err := uc.Login(ctx, " CAROL@example.com ", "longenough")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if user.Email != "carol@example.com" {
		t.Fatalf("unexpected user %q", user.Email)
	}
}

func TestAuthUseCaseLoginFailures(t *testing.T) {
	ctx := context.Background()

	_, err := newAuthUseCase(t, testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}).Login(ctx, "a@b.com", "short")
	var vErr *domainErrors.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "password" {
		t.Fatalf("expected password validation error, got %v", err)
	}

	storeErr := &domainErrors.StoreError{Op: "find user by email", Err: errors.New("timeout")}
	repo := testhelpers.NewUserRepositoryStub()
	repo.FindErr = storeErr
	_, err = newAuthUseCase(t, repo, testhelpers.HasherStub{}).Login(ctx, "a@b.com", "longenough")
	if !errors.Is(err, storeErr) || errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("store fault must not look like not found, got %v", err)
	}

	corrupt := errors.New("malformed hash")
	repo = testhelpers.NewUserRepositoryStub()
	if _, err := repo.Create(ctx, "a@b.com", "garbage"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := newAuthUseCase(t, repo, testhelpers.HasherStub{CompareFn: func(string, string) error { return corrupt }})
	_, err = uc.Login(ctx, "a@b.com", "longenough")
	if !errors.Is(err, corrupt) || errors.Is(err, domainErrors.ErrInvalidPassword) {
		t.Fatalf("expected compare fault to propagate, got %v", err)
	}
}

func TestAuthUseCaseRandomCredentialsRoundTrip(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(t, repo, testhelpers.HasherStub{})
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		email, password := testhelpers.RandomEmail(), testhelpers.RandomPassword()
		if _, err := uc.SignUp(ctx, email, password); err != nil {
			if errors.Is(err, domainErrors.ErrAlreadyExists) {
				continue
			}
			t.Fatalf("sign up %q: %v", email, err)
		}
		if _, err := uc.Login(ctx, email, password); err != nil {
			t.Fatalf("login %q: %v", email, err)
		}
	}
}
