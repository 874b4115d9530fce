// Package mongodb stores profiles as MongoDB documents with a unique index on email.
package mongodb

import (
	"context"
	"log/slog"

	"fintwin/config"
	"fintwin/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the profiles collection. The connection is
// verified and the email index ensured when the app starts.
func New(params Params) (*mongo.Collection, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri is required")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.URI).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	collection := client.Database(cfg.Database).Collection(cfg.Collection)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, collection); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", cfg.Database),
				slog.String("collection", cfg.Collection),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.Info("Disconnecting from MongoDB")

			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect from MongoDB")
		},
	})

	return collection, nil
}

func ensureIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: fieldEmail, Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})

	return errors.Wrap(err, "failed to create email index")
}
