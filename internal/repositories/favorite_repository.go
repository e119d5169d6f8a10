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

const favoritesCollection = "favorites"

// FavoriteRepository defines the interface for favorite data operations
type FavoriteRepository interface {
	ListFavoritesByEmail(ctx context.Context, email string) ([]models.Favorite, error)
	CreateFavorite(ctx context.Context, favorite *models.Favorite) (primitive.ObjectID, error)
	DeleteFavorite(ctx context.Context, id string) (int64, error)
}

// MongoFavoriteRepository implements FavoriteRepository for MongoDB
type MongoFavoriteRepository struct {
	collection *mongo.Collection
}

// NewMongoFavoriteRepository creates a new MongoFavoriteRepository
func NewMongoFavoriteRepository(db *mongo.Database) *MongoFavoriteRepository {
	return &MongoFavoriteRepository{collection: db.Collection(favoritesCollection)}
}

// ListFavoritesByEmail returns the favorites saved by email, newest first.
func (r *MongoFavoriteRepository) ListFavoritesByEmail(ctx context.Context, email string) ([]models.Favorite, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}

	cursor, err := r.collection.Find(ctx, userEmailFilter(email), newestFirst())
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to list favorites")
	}
	defer cursor.Close(ctx)

	favorites := []models.Favorite{}
	if err = cursor.All(ctx, &favorites); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to decode favorites")
	}
	return favorites, nil
}

// CreateFavorite inserts the favorite unless the user already saved the same review.
//
// The existence check and the insert are separate operations. Two concurrent requests can
// both pass the check; the unique index from EnsureIndexes then rejects the second insert,
// which is reported as ErrDuplicateFavorite as well.
func (r *MongoFavoriteRepository) CreateFavorite(ctx context.Context, favorite *models.Favorite) (primitive.ObjectID, error) {
	exists, err := r.exists(ctx, favorite.ReviewID, favorite.UserEmail)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if exists {
		return primitive.NilObjectID, ErrDuplicateFavorite
	}

	favorite.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, favorite); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicateFavorite
		}
		return primitive.NilObjectID, pkgerrors.Wrap(err, "failed to create favorite")
	}
	return favorite.ID, nil
}

// DeleteFavorite removes a favorite by ID and reports how many documents were deleted.
func (r *MongoFavoriteRepository) DeleteFavorite(ctx context.Context, id string) (int64, error) {
	objID, err := parseID(id)
	if err != nil {
		return 0, err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return 0, pkgerrors.Wrap(err, "failed to delete favorite")
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the unique (reviewId, userEmail) index and the listing index.
func (r *MongoFavoriteRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "reviewId", Value: 1}, {Key: "userEmail", Value: 1}},
			Options: options.Index().SetName("reviewId_userEmail_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "userEmail", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("userEmail_createdAt"),
		},
	})
	return pkgerrors.Wrap(err, "failed to create favorite indexes")
}

func (r *MongoFavoriteRepository) exists(ctx context.Context, reviewID, userEmail string) (bool, error) {
	filter := bson.M{"reviewId": reviewID, "userEmail": userEmail}
	err := r.collection.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, pkgerrors.Wrap(err, "failed to check existing favorite")
	}
	return true, nil
}
