package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a food review stored in the reviews collection. It is never updated in place.
type Review struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	FoodName       string             `json:"foodName" bson:"foodName"`
	FoodImage      string             `json:"foodImage" bson:"foodImage"`
	RestaurantName string             `json:"restaurantName" bson:"restaurantName"`
	Location       string             `json:"location" bson:"location"`
	Rating         float64            `json:"rating" bson:"rating"`
	ReviewText     string             `json:"reviewText" bson:"reviewText"`
	ReviewerName   string             `json:"reviewerName" bson:"reviewerName"`
	UserEmail      string             `json:"userEmail" bson:"userEmail"` // owner
	CreatedAt      Millis             `json:"createdAt" bson:"createdAt"`
}

// CreateReviewRequest defines the request body for creating a new review
type CreateReviewRequest struct {
	ID             string  `json:"_id,omitempty"` // ignored, the store assigns identifiers
	FoodName       string  `json:"foodName" validate:"required,max=200"`
	FoodImage      string  `json:"foodImage" validate:"omitempty,max=2048"`
	RestaurantName string  `json:"restaurantName" validate:"max=200"`
	Location       string  `json:"location" validate:"max=300"`
	Rating         float64 `json:"rating" validate:"gte=0,lte=5"`
	ReviewText     string  `json:"reviewText" validate:"max=5000"`
	ReviewerName   string  `json:"reviewerName" validate:"max=100"`
	UserEmail      string  `json:"userEmail" validate:"required,email"`
	CreatedAt      int64   `json:"createdAt" validate:"gte=0"`
}

// ToReview converts the request into a Review without an identifier.
func (r CreateReviewRequest) ToReview() *Review {
	return &Review{
		FoodName:       r.FoodName,
		FoodImage:      r.FoodImage,
		RestaurantName: r.RestaurantName,
		Location:       r.Location,
		Rating:         r.Rating,
		ReviewText:     r.ReviewText,
		ReviewerName:   r.ReviewerName,
		UserEmail:      r.UserEmail,
		CreatedAt:      Millis(r.CreatedAt),
	}
}
