package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/authgate/internal/config"
	"github.com/polkiloo/authgate/internal/server/http/handlers"
	"github.com/polkiloo/authgate/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ServiceFacade, logger *slog.Logger, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.RequestID(logger))
	engine.Use(middleware.RequestLogger(logger))
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
		corsCfg.ExposeHeaders = []string{middleware.HeaderXRequestID}
		engine.Use(cors.New(corsCfg))
	}
	engine.Use(middleware.DecompressRequest(cfg.MaxBodyBytes))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade, logger)
	healthHandler := handlers.NewHealthHandler(facade, logger)

	engine.POST("/sign-up", authHandler.SignUp)
	engine.POST("/login", authHandler.Login)
	engine.GET("/healthz", healthHandler.Check)

	return engine
}
