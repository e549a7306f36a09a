package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/authgate/internal/app"
	"github.com/polkiloo/authgate/internal/config"
	"github.com/polkiloo/authgate/internal/logger"
	"github.com/polkiloo/authgate/internal/pkg/auth"
	"github.com/polkiloo/authgate/internal/server/http/handlers"
	"github.com/polkiloo/authgate/internal/server/http/router"
	"github.com/polkiloo/authgate/internal/storage/postgres"
	"github.com/polkiloo/authgate/internal/usecase"
)

// Module assembles the full application graph; opts are appended last so
// tests can fx.Replace any component.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.CredentialsFacade) handlers.ServiceFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
