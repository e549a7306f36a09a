package auth

import (
	"testing"

	"github.com/polkiloo/authgate/internal/config"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestNewPasswordHasher(t *testing.T) {
	hasher := newPasswordHasher(hasherParams{Config: &config.Config{BcryptCost: 12}})
	bcryptHasher, ok := hasher.(*BcryptHasher)
	if !ok {
		t.Fatalf("expected *BcryptHasher, got %T", hasher)
	}
	if bcryptHasher.cost != 12 {
		t.Fatalf("unexpected cost: %d", bcryptHasher.cost)
	}
}

func TestModuleProvidesHasher(t *testing.T) {
	var hasher PasswordHasher
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(&config.Config{}),
		Module,
		fx.Populate(&hasher),
	)
	app.RequireStart()
	defer app.RequireStop()

	if got := hasher.(*BcryptHasher).cost; got != DefaultCost {
		t.Fatalf("expected default cost %d, got %d", DefaultCost, got)
	}
}
