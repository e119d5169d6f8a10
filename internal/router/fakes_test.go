package router

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/anonto42/local-food-lovers/backend/internal/models"
	"github.com/anonto42/local-food-lovers/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// memoryReviews is an in-memory ReviewRepository with the same query semantics as the
// Mongo implementation.
type memoryReviews struct {
	mu      sync.Mutex
	reviews map[primitive.ObjectID]models.Review
	err     error
}

func newMemoryReviews() *memoryReviews {
	return &memoryReviews{reviews: map[primitive.ObjectID]models.Review{}}
}

func (m *memoryReviews) sorted(keep func(models.Review) bool) []models.Review {
	out := []models.Review{}
	for _, r := range m.reviews {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}

func (m *memoryReviews) ListReviews(_ context.Context, search string) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	needle := strings.ToLower(search)
	return m.sorted(func(r models.Review) bool {
		return strings.Contains(strings.ToLower(r.FoodName), needle)
	}), nil
}

func (m *memoryReviews) ListTopReviews(_ context.Context) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := m.sorted(func(models.Review) bool { return true })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if len(out) > 6 {
		out = out[:6]
	}
	return out, nil
}

func (m *memoryReviews) GetReview(_ context.Context, id string) (*models.Review, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	r, ok := m.reviews[objID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &r, nil
}

func (m *memoryReviews) ListReviewsByEmail(_ context.Context, email string) ([]models.Review, error) {
	if email == "" {
		return nil, repositories.ErrMissingEmail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.sorted(func(r models.Review) bool { return r.UserEmail == email }), nil
}

func (m *memoryReviews) CreateReview(_ context.Context, review *models.Review) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	review.ID = primitive.NewObjectID()
	m.reviews[review.ID] = *review
	return review.ID, nil
}

func (m *memoryReviews) DeleteReview(_ context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, repositories.ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	if _, ok := m.reviews[objID]; !ok {
		return 0, nil
	}
	delete(m.reviews, objID)
	return 1, nil
}

type memoryFavorites struct {
	mu        sync.Mutex
	favorites map[primitive.ObjectID]models.Favorite
	err       error
}

func newMemoryFavorites() *memoryFavorites {
	return &memoryFavorites{favorites: map[primitive.ObjectID]models.Favorite{}}
}

func (m *memoryFavorites) ListFavoritesByEmail(_ context.Context, email string) ([]models.Favorite, error) {
	if email == "" {
		return nil, repositories.ErrMissingEmail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Favorite{}
	for _, f := range m.favorites {
		if f.UserEmail == email {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (m *memoryFavorites) CreateFavorite(_ context.Context, favorite *models.Favorite) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	for _, f := range m.favorites {
		if f.ReviewID == favorite.ReviewID && f.UserEmail == favorite.UserEmail {
			return primitive.NilObjectID, repositories.ErrDuplicateFavorite
		}
	}
	favorite.ID = primitive.NewObjectID()
	m.favorites[favorite.ID] = *favorite
	return favorite.ID, nil
}

func (m *memoryFavorites) DeleteFavorite(_ context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, repositories.ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	if _, ok := m.favorites[objID]; !ok {
		return 0, nil
	}
	delete(m.favorites, objID)
	return 1, nil
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context, *readpref.ReadPref) error {
	return p.err
}
