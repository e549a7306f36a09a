package router

import "go.uber.org/fx"

// Module provides the gin engine serving /sign-up, /login and /healthz.
var Module = fx.Provide(Setup)
