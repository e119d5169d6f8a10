package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/anonto42/local-food-lovers/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const reviewsNS = "localFoodLovers.reviews"

func reviewDoc(id primitive.ObjectID, food string, rating float64, createdAt int64) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "foodName", Value: food},
		{Key: "rating", Value: rating},
		{Key: "userEmail", Value: "a@x.com"},
		{Key: "createdAt", Value: createdAt},
	}
}

func TestMongoReviewRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("list decodes documents in store order", func(mt *mtest.T) {
		repo := NewMongoReviewRepository(mt.DB)
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, reviewsNS, mtest.FirstBatch,
			reviewDoc(first, "Pho", 5, 200),
			reviewDoc(second, "Ramen", 4, 100),
		))

		reviews, err := repo.ListReviews(ctx, "")
		if err != nil {
			t.Fatalf("ListReviews: %v", err)
		}
		if len(reviews) != 2 {
			t.Fatalf("got %d reviews, want 2", len(reviews))
		}
		if reviews[0].ID != first || reviews[0].FoodName != "Pho" || reviews[0].CreatedAt != 200 {
			t.Errorf("first review = %+v", reviews[0])
		}
		if reviews[1].ID != second || reviews[1].Rating != 4 {
			t.Errorf("second review = %+v", reviews[1])
		}
	})

	mt.Run("list returns empty slice for no matches", func(mt *mtest.T) {
		repo := NewMongoReviewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, reviewsNS, mtest.FirstBatch))

		reviews, err := repo.ListReviews(ctx, "nothing")
		if err != nil {
			t.Fatalf("ListReviews: %v", err)
		}
		if reviews == nil || len(reviews) != 0 {
			t.Fatalf("ListReviews = %#v, want empty non-nil slice", reviews)
		}
	})

	mt.Run("list surfaces store errors", func(mt *mtest.T) {
		repo := NewMongoReviewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 2, Name: "BadValue", Message: "boom",
		}))

		if _, err := repo.ListTopReviews(ctx); err == nil {
			t.Fatal("expected an error")
		}
	})

	mt.Run("get found", func(mt *mtest.T) {
		repo := NewMongoReviewRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, reviewsNS, mtest.FirstBatch, reviewDoc(id, "Pho", 5, 100)))

		review, err := repo.GetReview(ctx, id.Hex())
		if err != nil {
			t.Fatalf("GetReview: %v", err)
		}
		if review.ID != id || review.FoodName != "Pho" {
			t.Fatalf("GetReview = %+v", review)
		}
	})

	mt.Run("get absent", func(mt *mtest.T) {
		repo := NewMongoReviewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, reviewsNS, mtest.FirstBatch))

		_, err := repo.GetReview(ctx, primitive.NewObjectID().Hex())
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("GetReview error = %v, want ErrNotFound", err)
		}
	})

	mt.Run("get malformed id never reaches the store", func(mt *mtest.T) {
		repo := NewMongoReviewRepository(mt.DB)

		_, err := repo.GetReview(ctx, "not-an-id")
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("GetReview error = %v, want ErrInvalidID", err)
		}
		if evt := mt.GetStartedEvent(); evt != nil {
			t.Fatalf("unexpected command sent: %s", evt.CommandName)
		}
	})

	mt.Run("my reviews requires email", func(mt *mtest.T) {
		repo := NewMongoReviewRepository(mt.DB)

		if _, err := repo.ListReviewsByEmail(ctx, ""); !errors.Is(err, ErrMissingEmail) {
			t.Fatalf("ListReviewsByEmail error = %v, want ErrMissingEmail", err)
		}
	})

	mt.Run("create assigns id and keeps createdAt", func(mt *mtest.T) {
		repo := NewMongoReviewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		review := &models.Review{FoodName: "Pho", Rating: 5, UserEmail: "a@x.com", CreatedAt: 100}
		id, err := repo.CreateReview(ctx, review)
		if err != nil {
			t.Fatalf("CreateReview: %v", err)
		}
		if id.IsZero() || review.ID != id {
			t.Fatalf("CreateReview id = %v, review.ID = %v", id, review.ID)
		}
		if review.CreatedAt != 100 {
			t.Fatalf("CreatedAt = %d, want 100", review.CreatedAt)
		}
	})

	mt.Run("create stores the record as given", func(mt *mtest.T) {
		repo := NewMongoReviewRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		review := &models.Review{FoodName: "Pho", UserEmail: "a@x.com"}
		if _, err := repo.CreateReview(ctx, review); err != nil {
			t.Fatalf("CreateReview: %v", err)
		}
		if review.CreatedAt != 0 {
			t.Fatalf("CreatedAt = %d, want 0", review.CreatedAt)
		}
	})

	mt.Run("delete reports count", func(mt *mtest.T) {
		repo := NewMongoReviewRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		id := primitive.NewObjectID().Hex()
		n, err := repo.DeleteReview(ctx, id)
		if err != nil || n != 1 {
			t.Fatalf("first DeleteReview = %d, %v; want 1, nil", n, err)
		}
		n, err = repo.DeleteReview(ctx, id)
		if err != nil || n != 0 {
			t.Fatalf("second DeleteReview = %d, %v; want 0, nil", n, err)
		}
	})

	mt.Run("delete malformed id", func(mt *mtest.T) {
		repo := NewMongoReviewRepository(mt.DB)

		if _, err := repo.DeleteReview(ctx, "xyz"); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("DeleteReview error = %v, want ErrInvalidID", err)
		}
	})
}
