package usecase

import (
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/authgate/internal/domain/repository"
	pkgAuth "github.com/polkiloo/authgate/internal/pkg/auth"
	testhelpers "github.com/polkiloo/authgate/internal/test"
)

func TestModuleProvidesAuthUseCase(t *testing.T) {
	var uc *AuthUseCase
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Provide(
			func() repository.UserRepository { return testhelpers.NewUserRepositoryStub() },
			func() pkgAuth.PasswordHasher { return testhelpers.HasherStub{} },
		),
		Module,
		fx.Populate(&uc),
	)
	app.RequireStart()
	defer app.RequireStop()

	if uc == nil || uc.validator == nil {
		t.Fatal("expected use case with validator")
	}
}
