// Package mongo implements the entity store on MongoDB.
// Transactions need a replica set; a standalone server only supports the non-transactional paths.
package mongo

import (
	"context"
	"log/slog"

	"cafemap/config"
	"cafemap/internal/domain/lifecycle"
	"cafemap/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Store groups the collections backing the cafe catalog.
type Store struct {
	client   *mongo.Client
	cafes    *mongo.Collection
	reviews  *mongo.Collection
	contacts *mongo.Collection
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and registers its lifecycle.
func New(params Params) (*Store, error) {
	cfg := params.Config.Mongo
	if cfg == nil {
		return nil, errors.New("mongo configuration is missing")
	}

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	store := NewStore(client, cfg)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := store.EnsureIndexes(ctx); err != nil {
				return err
			}
			params.Logger.Info("MongoDB connected", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return store, nil
}

// NewStore binds the configured collections of an existing client.
func NewStore(client *mongo.Client, cfg *config.MongoConfig) *Store {
	db := client.Database(cfg.Database)

	return &Store{
		client:   client,
		cafes:    db.Collection(cfg.CafeCollection),
		reviews:  db.Collection(cfg.ReviewCollection),
		contacts: db.Collection(cfg.ContactCollection),
	}
}

// EnsureIndexes creates the slug, geo and review indexes. Existing indexes are left alone.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.cafes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("uniq_slug").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "location", Value: "2dsphere"}},
			Options: options.Index().SetName("geo_location"),
		},
		{
			Keys: bson.D{
				{Key: "verified", Value: 1},
				{Key: "featured", Value: -1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("moderation_created"),
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create cafe indexes")
	}

	_, err = s.reviews.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "cafeId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("cafe_created"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create review indexes")
	}

	return nil
}
