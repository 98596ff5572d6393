package storage

import (
	"context"
	"errors"
	"fmt"
)

// Storage key names. They match the browser app's local storage keys so a
// snapshot exported from the old client loads unchanged.
const (
	NotesKey           = "recentNotes"
	DownloadHistoryKey = "downloadHistory"
)

var ErrKeyNotFound = errors.New("key not found")

// KV is the persistence contract: whole-snapshot reads and writes of opaque
// byte values under string keys. No transactions, no partial updates.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type Config struct {
	Backend  string // "bolt", "redis" or "mongo"
	BoltPath string
	RedisURL string
	MongoURI string
	MongoDB  string
}

// Open creates the store selected by cfg.Backend.
func Open(cfg Config) (KV, error) {
	switch cfg.Backend {
	case "", "bolt":
		return OpenBolt(cfg.BoltPath)
	case "redis":
		return OpenRedis(cfg.RedisURL)
	case "mongo":
		return OpenMongo(cfg.MongoURI, cfg.MongoDB)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
