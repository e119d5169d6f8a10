package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite is a user's bookmark of a review. The review fields are copied at favoriting
// time; ReviewID is not checked against the reviews collection.
type Favorite struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ReviewID       string             `json:"reviewId" bson:"reviewId"`
	FoodName       string             `json:"foodName" bson:"foodName"`
	FoodImage      string             `json:"foodImage" bson:"foodImage"`
	RestaurantName string             `json:"restaurantName" bson:"restaurantName"`
	Location       string             `json:"location" bson:"location"`
	Rating         float64            `json:"rating" bson:"rating"`
	UserEmail      string             `json:"userEmail" bson:"userEmail"`
	CreatedAt      Millis             `json:"createdAt" bson:"createdAt"`
}

// CreateFavoriteRequest defines the request body for adding a favorite
type CreateFavoriteRequest struct {
	ID             string  `json:"_id,omitempty"`
	ReviewID       string  `json:"reviewId" validate:"required,objectid"`
	FoodName       string  `json:"foodName" validate:"required,max=200"`
	FoodImage      string  `json:"foodImage" validate:"omitempty,max=2048"`
	RestaurantName string  `json:"restaurantName" validate:"max=200"`
	Location       string  `json:"location" validate:"max=300"`
	Rating         float64 `json:"rating" validate:"gte=0,lte=5"`
	UserEmail      string  `json:"userEmail" validate:"required,email"`
	CreatedAt      int64   `json:"createdAt" validate:"gte=0"`
}

func (r CreateFavoriteRequest) ToFavorite() *Favorite {
	return &Favorite{
		ReviewID:       r.ReviewID,
		FoodName:       r.FoodName,
		FoodImage:      r.FoodImage,
		RestaurantName: r.RestaurantName,
		Location:       r.Location,
		Rating:         r.Rating,
		UserEmail:      r.UserEmail,
		CreatedAt:      Millis(r.CreatedAt),
	}
}

// InsertResult mirrors the acknowledgment the store returns for an insert.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// DeleteResult mirrors the acknowledgment the store returns for a delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
