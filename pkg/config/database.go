package config

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectTimeout    = 10 * time.Second
	disconnectTimeout = 5 * time.Second
)

// DB holds the MongoDB connection shared by every request.
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
	logger   zerolog.Logger
}

// InitDB connects to MongoDB and verifies the connection with a ping.
func InitDB(cfg *Config, logger zerolog.Logger) (*DB, error) {
	client, err := initMongo(cfg.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	logger.Info().Str("database", cfg.DBName).Msg("Successfully connected to MongoDB")
	return &DB{
		Client:   client,
		Database: client.Database(cfg.DBName),
		logger:   logger,
	}, nil
}

func initMongo(uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	clientOptions := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping the primary to verify connection
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// CloseDB closes the database connection.
func (db *DB) CloseDB() {
	if db == nil || db.Client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	if err := db.Client.Disconnect(ctx); err != nil {
		db.logger.Error().Err(err).Msg("Error closing MongoDB connection")
		return
	}
	db.logger.Info().Msg("MongoDB connection closed")
}
