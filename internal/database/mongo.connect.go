// Package database manages the MongoDB connection and index lifecycle.
package database

import (
	"context"
	"fmt"
	"time"

	"ngo_portal/internal/common"
	"ngo_portal/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// GetInstance connects to MongoDB and verifies the connection with a
// ping. Returns ErrConnection (503) when the server is unreachable so
// boot failures surface with the right taxonomy.
func GetInstance(uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, common.NewError(common.ErrCodeDatabaseConnection,
			"MongoDB connection URI is empty", common.StatusServiceUnavailable, nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(uri).
		SetMinPoolSize(10).
		SetMaxPoolSize(50).
		SetMaxConnIdleTime(5 * time.Minute).
		SetConnectTimeout(10 * time.Second).
		SetSocketTimeout(30 * time.Second).
		SetServerSelectionTimeout(10 * time.Second).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", common.ConvertMongoError(err))
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", common.ErrConnection)
	}

	logger.GetAppLogger().Info("Connected to MongoDB")
	return client, nil
}

// CloseInstance disconnects the client, logging instead of failing when
// the shutdown path races the connection.
func CloseInstance(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.GetAppLogger().Errorf("Mongo disconnect: %v", err)
		return
	}
	logger.GetAppLogger().Info("MongoDB connection closed")
}
