package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/rummyledger/internal/blob"
)

// Store is a Redis-backed implementation of the blob store
type Store struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis blob store instance
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Store{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis blob store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Store {
	return &Store{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements the interface
var _ blob.Store = (*Store)(nil)

func (s *Store) Download(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, documentKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, blob.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *Store) Upload(ctx context.Context, key string, data []byte) error {
	// Documents never expire: the ledger is the system of record
	return s.client.Set(ctx, documentKey(key), data, 0).Err()
}
