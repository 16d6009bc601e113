// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hazardmap/internal/delivery/api/middleware"
	"hazardmap/internal/delivery/api/router/handler"
	"hazardmap/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RiskHandler        *handler.RiskHandler
	ShelterHandler     *handler.ShelterHandler
	FavoriteHandler    *handler.FavoriteHandler
	AuthHandler        *handler.AuthHandler
	IdentityMiddleware *middleware.IdentityMiddleware
	Metrics            *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	riskHandler        *handler.RiskHandler
	shelterHandler     *handler.ShelterHandler
	favoriteHandler    *handler.FavoriteHandler
	authHandler        *handler.AuthHandler
	identityMiddleware *middleware.IdentityMiddleware
	metrics            *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		riskHandler:        params.RiskHandler,
		shelterHandler:     params.ShelterHandler,
		favoriteHandler:    params.FavoriteHandler,
		authHandler:        params.AuthHandler,
		identityMiddleware: params.IdentityMiddleware,
		metrics:            params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Reference data lookups are public.
	e.GET("/risk", r.riskHandler.GetRisk)
	e.GET("/shelters/nearest", r.shelterHandler.GetNearest)

	// Favorites accept anonymous callers, but a bearer token that fails
	// verification is rejected rather than treated as anonymous.
	favoritesGroup := e.Group("/favorites", r.identityMiddleware.Resolve, r.identityMiddleware.RejectInvalid)
	{
		favoritesGroup.POST("", r.favoriteHandler.CreateFavorite)
		favoritesGroup.GET("", r.favoriteHandler.ListFavorites)
		favoritesGroup.DELETE("/:id", r.favoriteHandler.DeleteFavorite)
	}

	e.POST("/users/register", r.authHandler.RegisterDevice)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/claim_device", r.authHandler.ClaimDevice,
			r.identityMiddleware.Resolve, r.identityMiddleware.RequireAuth)
	}

	e.GET("/me", r.authHandler.Me, r.identityMiddleware.Resolve, r.identityMiddleware.RequireAuth)
}
