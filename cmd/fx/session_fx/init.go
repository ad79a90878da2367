package session_fx

import (
	"go.uber.org/fx"
	"prodfeedback/pkg/middleware"
)

var Module = fx.Provide(
	provideSessionResolver)

func provideSessionResolver() middleware.SessionResolver {
	return middleware.NewTokenSessionResolver()
}
