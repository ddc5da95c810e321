package implementation

import (
	"context"
	"encoding/json"
	"fmt"

	"astro-context-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

type RedisArchiveRepositoryImpl struct {
	client *redis.Client
}

// NewRedisArchiveRepository stores archive documents under their full
// path-style keys with no expiry; the archive is the durable record of
// every ingested day.
func NewRedisArchiveRepository(client *redis.Client) contract.DocumentArchive {
	return &RedisArchiveRepositoryImpl{client: client}
}

func (r *RedisArchiveRepositoryImpl) Put(ctx context.Context, key string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal archive document %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write archive key %s: %w", key, err)
	}
	return nil
}

func (r *RedisArchiveRepositoryImpl) Get(ctx context.Context, key string, out interface{}) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return fmt.Errorf("failed to read archive key %s: %w", key, err)
	}
	return json.Unmarshal(data, out)
}
