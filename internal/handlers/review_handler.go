package handlers

import (
	"net/http"

	"github.com/anonto42/local-food-lovers/backend/internal/models"
	"github.com/anonto42/local-food-lovers/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ReviewHandler handles HTTP requests related to reviews
type ReviewHandler struct {
	reviewRepository repositories.ReviewRepository
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewRepo repositories.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{reviewRepository: reviewRepo}
}

// RegisterReviewRoutes registers review-related routes
func (h *ReviewHandler) RegisterReviewRoutes(g *echo.Group) {
	g.GET("/reviews", h.GetReviews) // optional ?search= on foodName
	g.GET("/reviews/top", h.GetTopReviews)
	g.GET("/reviews/:id", h.GetReview)
	g.GET("/my-reviews", h.GetMyReviews)
	g.POST("/reviews", h.CreateReview)
	g.DELETE("/reviews/:id", h.DeleteReview)
}

// GetReviews lists all reviews, newest first
func (h *ReviewHandler) GetReviews(c echo.Context) error {
	reviews, err := h.reviewRepository.ListReviews(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return repositoryError(err, "Review", "Failed to get reviews")
	}
	return c.JSON(http.StatusOK, reviews)
}

// GetTopReviews lists the highest rated reviews for the home page
func (h *ReviewHandler) GetTopReviews(c echo.Context) error {
	reviews, err := h.reviewRepository.ListTopReviews(c.Request().Context())
	if err != nil {
		return repositoryError(err, "Review", "Failed to get top reviews")
	}
	return c.JSON(http.StatusOK, reviews)
}

// GetReview retrieves a review by ID
func (h *ReviewHandler) GetReview(c echo.Context) error {
	review, err := h.reviewRepository.GetReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return repositoryError(err, "Review", "Failed to get review")
	}
	return c.JSON(http.StatusOK, review)
}

// GetMyReviews lists the reviews written by ?email=
func (h *ReviewHandler) GetMyReviews(c echo.Context) error {
	reviews, err := h.reviewRepository.ListReviewsByEmail(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return repositoryError(err, "Review", "Failed to get my reviews")
	}
	return c.JSON(http.StatusOK, reviews)
}

// CreateReview creates a new review
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req models.CreateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.reviewRepository.CreateReview(c.Request().Context(), req.ToReview())
	if err != nil {
		return repositoryError(err, "Review", "Failed to add review")
	}
	return c.JSON(http.StatusOK, models.InsertResult{Acknowledged: true, InsertedID: id.Hex()})
}

// DeleteReview deletes a review
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	deleted, err := h.reviewRepository.DeleteReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return repositoryError(err, "Review", "Failed to delete review")
	}
	return c.JSON(http.StatusOK, models.DeleteResult{Acknowledged: true, DeletedCount: deleted})
}
