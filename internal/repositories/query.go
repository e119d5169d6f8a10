package repositories

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const topReviewsLimit = 6

// parseID converts a hex identifier, rejecting malformed input before it reaches the store.
func parseID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return objID, nil
}

// foodNameFilter matches search anywhere in foodName, ignoring case.
// The term is escaped so it is matched literally.
func foodNameFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	return bson.M{"foodName": primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}}
}

func userEmailFilter(email string) bson.M {
	return bson.M{"userEmail": email}
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

func topRated() *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetLimit(topReviewsLimit)
}
