package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework used for routing

	"github.com/rghazali/fitfinder/internal/handler"
	"github.com/rghazali/fitfinder/internal/middleware"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Workouts  *handler.WorkoutHandler
	Lists     *handler.SavedListHandler
	Exercises *handler.ExerciseHandler
	Videos    *handler.VideoHandler
	Partners  *handler.PartnerHandler
}

// Register mounts all application routes on the provided Echo instance.
//
// Route groups:
//
//	/healthz            – liveness probe, no auth
//	/v1/auth/*          – identity-provider round trip, no auth
//	/v1/workouts        – catalog CRUD, no auth (the catalog is shared)
//	/v1/exercises, /v1/videos – external-API proxies, rate limited
//	/v1/partners        – board reads open, mutations require a session
//	/v1/lists, /v1/me   – require a session token
func Register(e *echo.Echo, h Handlers, jwtSecret string, rateLimit echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	// Identity round trip; these run before any session exists.
	authGroup := e.Group("/v1/auth")
	authGroup.GET("/login", h.Auth.Login)
	authGroup.GET("/callback", h.Auth.Callback)
	authGroup.GET("/logout", h.Auth.Logout)

	// Workout catalog.
	e.GET("/v1/workouts", h.Workouts.List)
	e.POST("/v1/workouts", h.Workouts.Create)
	e.GET("/v1/workouts/:id", h.Workouts.Get)
	e.PUT("/v1/workouts/:id", h.Workouts.Update)
	e.DELETE("/v1/workouts/:id", h.Workouts.Delete)

	// External-API backed routes share the token-bucket limiter so one
	// client cannot drain the RapidAPI / YouTube quota.
	external := e.Group("/v1")
	if rateLimit != nil {
		external.Use(rateLimit)
	}
	external.POST("/exercises/search", h.Exercises.Search)
	external.GET("/videos", h.Videos.Search)

	// Partner board: browsing is public, posting and deleting are not.
	e.GET("/v1/partners", h.Partners.List)

	session := e.Group("/v1")
	session.Use(middleware.JWTAuth(jwtSecret))
	session.GET("/me", h.Auth.Me)
	session.POST("/lists", h.Lists.Create)
	session.GET("/lists", h.Lists.List)
	session.POST("/lists/:id/workouts", h.Lists.AddWorkout)
	session.GET("/lists/:id/workouts", h.Lists.Workouts)
	session.POST("/partners", h.Partners.Create)
	session.DELETE("/partners/:id", h.Partners.Delete)
}
