package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dacite/dacite/configuration"
	"github.com/dacite/dacite/hash"
)

// Redis is a Blob backed by a redis (or redis-cluster/sentinel, via
// UniversalClient) instance. Blobs are stored as plain string values
// keyed by their hash, using a "namespace::digest" key-naming scheme.
type Redis struct {
	client redis.UniversalClient
}

// NewRedis builds a Redis store from the connection options parsed out of
// the CLI's configuration (configuration.Redis). No TLS client
// configuration is built from cfg.TLS; a non-empty cfg.TLS.Certificate
// only selects the universal client.
func NewRedis(cfg configuration.Redis) (*Redis, error) {
	opts := cfg.Options
	universal := opts.Simple()
	if len(opts.Addrs) > 1 || cfg.TLS.Certificate != "" {
		client := redis.NewUniversalClient(&opts)
		return &Redis{client: client}, nil
	}
	if universal.Addr == "" {
		return nil, fmt.Errorf("store: redis: missing address")
	}
	return &Redis{client: redis.NewClient(universal)}, nil
}

func blobKey(h hash.H) string {
	return "dacite::blob::" + h.Hex()
}

func (r *Redis) Put(ctx context.Context, h hash.H, data []byte) error {
	return r.client.Set(ctx, blobKey(h), data, 0).Err()
}

func (r *Redis) Get(ctx context.Context, h hash.H) ([]byte, error) {
	data, err := r.client.Get(ctx, blobKey(h)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

var _ Blob = (*Redis)(nil)
