package config

import (
	"context"
	"crypto/tls"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultMongoDB = "hojadevida"

var MongoClient *mongo.Client

// MongoDatabase is the database named by MONGO_DB.
func MongoDatabase() *mongo.Database {
	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = defaultMongoDB
	}
	return MongoClient.Database(name)
}

// InitMongo connects the export history store. A missing MONGO_URI yields
// ErrNotConfigured so the caller can run without history.
func InitMongo() error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		return fmt.Errorf("MONGO_URI is not set: %w", ErrNotConfigured)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	// export history is low volume, a small pool is enough
	opts := options.Client().ApplyURI(uri).
		SetAppName("hojadevida").
		SetServerSelectionTimeout(10 * time.Second).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(5)

	if tlsCfg := mongoTLS(); tlsCfg != nil {
		opts = opts.SetTLSConfig(tlsCfg)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return fmt.Errorf("ping mongo: %w", err)
	}

	MongoClient = client
	return nil
}

// mongoTLS returns an explicit TLS config only when MONGO_TLS=true.
// Otherwise the driver follows the URI options.
func mongoTLS() *tls.Config {
	if !getEnvBool("MONGO_TLS", false) {
		return nil
	}
	return &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: getEnvBool("MONGO_TLS_INSECURE", false),
	}
}

// CloseMongo disconnects the client if one was opened.
func CloseMongo(ctx context.Context) error {
	if MongoClient == nil {
		return nil
	}
	return MongoClient.Disconnect(ctx)
}
