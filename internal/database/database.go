package database

import (
	"context"
	"fmt"
	"time"

	"github.com/bloops-games/sketchy/internal/logging"
	bolt "go.etcd.io/bbolt"
)

type DB struct {
	DB *bolt.DB
}

// New opens the bbolt file named in config, creating it if needed.
func New(ctx context.Context, config *Config) (*DB, error) {
	logger := logging.FromContext(ctx).Named("database.New")
	logger.Infof("opening db %s", config.FilePath)

	db, err := bolt.Open(config.FilePath, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	return &DB{DB: db}, nil
}

func (db *DB) Close(ctx context.Context) error {
	logger := logging.FromContext(ctx).Named("database.Close")
	logger.Infof("closing db")

	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("close bolt db: %w", err)
	}

	return nil
}
