package logger

import "go.uber.org/fx"

// Module provides the service-wide *slog.Logger built from config.LogLevel.
var Module = fx.Provide(New)
