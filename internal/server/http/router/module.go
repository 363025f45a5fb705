package router

import "go.uber.org/fx"

// Module registers the HTTP router constructor in the fx graph.
var Module = fx.Provide(Setup)
