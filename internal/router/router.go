package router

import (
	"github.com/anonto42/local-food-lovers/backend/internal/handlers"
	"github.com/anonto42/local-food-lovers/backend/internal/middleware"
	"github.com/anonto42/local-food-lovers/backend/internal/repositories"
	"github.com/anonto42/local-food-lovers/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Dependencies are the collaborators the routes are built from.
type Dependencies struct {
	Logger         zerolog.Logger
	AllowedOrigins []string
	Reviews        repositories.ReviewRepository
	Favorites      repositories.FavoriteRepository
	DB             handlers.Pinger
}

// New builds the echo instance with middleware, validator and all routes.
func New(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validators.NewValidator()
	e.JSONSerializer = handlers.StrictJSONSerializer{}

	SetupMiddleware(e, deps)
	SetupRoutes(e, deps)
	return e
}

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, deps Dependencies) {
	global := middleware.NewGlobalMiddlewares(deps.Logger)

	e.HTTPErrorHandler = global.GlobalErrorHandler
	e.Use(middleware.RequestID())
	e.Use(global.RequestLogger())
	e.Use(global.Recover())
	e.Use(global.CORS(deps.AllowedOrigins))
	e.Use(global.BodyLimit())
	deps.Logger.Debug().Strs("origins", deps.AllowedOrigins).Msg("Global middleware configured")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	api := e.Group("")

	healthHandler := handlers.NewHealthHandler(deps.DB)
	healthHandler.RegisterHealthRoutes(api)

	reviewHandler := handlers.NewReviewHandler(deps.Reviews)
	reviewHandler.RegisterReviewRoutes(api)

	favoriteHandler := handlers.NewFavoriteHandler(deps.Favorites)
	favoriteHandler.RegisterFavoriteRoutes(api)

	deps.Logger.Debug().Msg("All routes configured")
}
