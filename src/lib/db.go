package lib

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/config"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/logger"
)

// DB is the application database handle, set by ConnectDB.
var DB *mongo.Database

var client *mongo.Client

// ConnectDB connects to MongoDB and sets the global DB handle.
func ConnectDB(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return err
	}
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	client = c
	DB = c.Database(cfg.MongoDB)

	// Uniqueness of emails is enforced by the database, not by the
	// check-then-insert in the register handler.
	_, err = DB.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	logger.L().Info("connected to MongoDB", zap.String("database", cfg.MongoDB))
	return nil
}

// DisconnectDB closes the MongoDB connection.
func DisconnectDB(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
