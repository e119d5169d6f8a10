package repositories

import (
	"context"
	"errors"

	"github.com/anonto42/local-food-lovers/backend/internal/models"
	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const reviewsCollection = "reviews"

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	ListReviews(ctx context.Context, search string) ([]models.Review, error)
	ListTopReviews(ctx context.Context) ([]models.Review, error)
	GetReview(ctx context.Context, id string) (*models.Review, error)
	ListReviewsByEmail(ctx context.Context, email string) ([]models.Review, error)
	CreateReview(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	DeleteReview(ctx context.Context, id string) (int64, error)
}

// MongoReviewRepository implements ReviewRepository for MongoDB
type MongoReviewRepository struct {
	collection *mongo.Collection
}

// NewMongoReviewRepository creates a new MongoReviewRepository
func NewMongoReviewRepository(db *mongo.Database) *MongoReviewRepository {
	return &MongoReviewRepository{collection: db.Collection(reviewsCollection)}
}

// ListReviews returns every review, newest first, optionally narrowed by a foodName search.
func (r *MongoReviewRepository) ListReviews(ctx context.Context, search string) ([]models.Review, error) {
	reviews, err := r.find(ctx, foodNameFilter(search), newestFirst())
	return reviews, pkgerrors.Wrap(err, "failed to list reviews")
}

// ListTopReviews returns the six highest rated reviews, newest first among equal ratings.
func (r *MongoReviewRepository) ListTopReviews(ctx context.Context) ([]models.Review, error) {
	reviews, err := r.find(ctx, bson.M{}, topRated())
	return reviews, pkgerrors.Wrap(err, "failed to list top reviews")
}

// GetReview retrieves a review by ID
func (r *MongoReviewRepository) GetReview(ctx context.Context, id string) (*models.Review, error) {
	objID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var review models.Review
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, pkgerrors.Wrap(err, "failed to get review")
	}
	return &review, nil
}

// ListReviewsByEmail returns the reviews owned by email, newest first.
func (r *MongoReviewRepository) ListReviewsByEmail(ctx context.Context, email string) ([]models.Review, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	reviews, err := r.find(ctx, userEmailFilter(email), newestFirst())
	return reviews, pkgerrors.Wrap(err, "failed to list reviews by email")
}

// CreateReview inserts the review and sets its generated ID.
func (r *MongoReviewRepository) CreateReview(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	review.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, review); err != nil {
		return primitive.NilObjectID, pkgerrors.Wrap(err, "failed to create review")
	}
	return review.ID, nil
}

// DeleteReview removes a review by ID and reports how many documents were deleted.
func (r *MongoReviewRepository) DeleteReview(ctx context.Context, id string) (int64, error) {
	objID, err := parseID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, pkgerrors.Wrap(err, "failed to delete review")
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the indexes backing the listing queries.
func (r *MongoReviewRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userEmail", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("userEmail_createdAt"),
		},
		{
			Keys:    bson.D{{Key: "rating", Value: -1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("rating_createdAt"),
		},
	})
	return pkgerrors.Wrap(err, "failed to create review indexes")
}

func (r *MongoReviewRepository) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Review, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
