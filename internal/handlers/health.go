package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/anonto42/local-food-lovers/backend/internal/errs"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	livenessMessage = "Local Food Lovers API is running"
	pingTimeout     = 2 * time.Second
)

// Pinger is satisfied by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterHealthRoutes(g *echo.Group) {
	g.GET("/", h.Liveness)
	g.GET("/health", h.HealthCheck)
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.String(http.StatusOK, livenessMessage)
}

// HealthCheck reports whether the database answers a ping.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx, readpref.Primary()); err != nil {
		return errs.NewServiceUnavailableError("Database unavailable", err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":   "healthy",
		"service":  "local-food-lovers-api",
		"database": "up",
	})
}
