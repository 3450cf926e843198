package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	dialTimeout = 10 * time.Second
	// defaultTimeout bounds each repository operation.
	defaultTimeout = 10 * time.Second
)

// Config names the MongoDB instance and database serving the blog.
type Config struct {
	URI      string
	Database string
}

// Connect dials cfg.URI and proves the connection with a primary ping before
// handing back the client and the blog database. Callers own the disconnect.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(dialTimeout)

	client, err := mongo.Connect(dialCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect %s: %w", cfg.Database, err)
	}
	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}
