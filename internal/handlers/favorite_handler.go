package handlers

import (
	"net/http"

	"github.com/anonto42/local-food-lovers/backend/internal/models"
	"github.com/anonto42/local-food-lovers/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FavoriteHandler handles favorite HTTP requests
type FavoriteHandler struct {
	favoriteRepository repositories.FavoriteRepository
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(favoriteRepo repositories.FavoriteRepository) *FavoriteHandler {
	return &FavoriteHandler{favoriteRepository: favoriteRepo}
}

// RegisterFavoriteRoutes registers favorite routes
func (h *FavoriteHandler) RegisterFavoriteRoutes(g *echo.Group) {
	g.POST("/favorites", h.AddFavorite)
	g.GET("/favorites", h.GetFavorites)
	g.DELETE("/favorites/:id", h.RemoveFavorite)
}

// AddFavorite saves a review to the user's favorites, once per review.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	var req models.CreateFavoriteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.favoriteRepository.CreateFavorite(c.Request().Context(), req.ToFavorite())
	if err != nil {
		return repositoryError(err, "Favorite", "Failed to add favorite")
	}
	return c.JSON(http.StatusOK, models.InsertResult{Acknowledged: true, InsertedID: id.Hex()})
}

// GetFavorites lists the favorites of ?email=
func (h *FavoriteHandler) GetFavorites(c echo.Context) error {
	favorites, err := h.favoriteRepository.ListFavoritesByEmail(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return repositoryError(err, "Favorite", "Failed to get favorites")
	}
	return c.JSON(http.StatusOK, favorites)
}

// RemoveFavorite deletes a favorite by ID
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	deleted, err := h.favoriteRepository.DeleteFavorite(c.Request().Context(), c.Param("id"))
	if err != nil {
		return repositoryError(err, "Favorite", "Failed to remove favorite")
	}
	return c.JSON(http.StatusOK, models.DeleteResult{Acknowledged: true, DeletedCount: deleted})
}
