package router

import (
	"github.com/givehub/givehub/internal/application"
	"github.com/givehub/givehub/internal/container"
	pginfra "github.com/givehub/givehub/internal/infrastructure/postgres"
	handlers "github.com/givehub/givehub/internal/interface/http"
	"github.com/givehub/givehub/internal/interface/strategy"
	"github.com/givehub/givehub/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry) {
	store := pginfra.NewStore(container.GetPGPool())

	service := application.NewService(
		store,
		container.GetJWT(),
		container.GetRedis(),
		container.GetLogger(),
		container.GetRabbitPub(),
	)

	bearer := strategy.NewBearer(container.GetJWT(), service)
	handler := handlers.NewAuthHandler(service, container.GetLogger())

	r.Add(modules.NewAuth(handler, bearer))
}
