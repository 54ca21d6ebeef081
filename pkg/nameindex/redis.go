package nameindex

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig carries connection settings for the Redis-backed index.
type RedisConfig struct {
	ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"` // ConnectionURL in the format "redis://:password@localhost:6379/0".
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`             // RetryAttempts is the number of connection attempts.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`            // RetryInterval is the delay between attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`          // ConnectTimeout bounds the whole connect phase.
	Key            string        `env:"NAMEINDEX_REDIS_KEY" envDefault:"formkit:names"`  // Key is the set that holds claimed names.
}

// Connect establishes a Redis connection with retries and returns an Index
// over the configured set.
func Connect(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidRedisURL, err)
	}

	for range max(cfg.RetryAttempts, 1) {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return NewRedis(client, cfg.Key), nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}
	return nil, ErrRedisNotReady
}

// Redis is an Index backed by a Redis set, for deployments where several
// instances must agree on which names are taken.
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis wraps an existing client. The key names the set holding claimed
// names.
func NewRedis(client *redis.Client, key string) *Redis {
	if key == "" {
		key = "formkit:names"
	}
	return &Redis{client: client, key: key}
}

func (r *Redis) Exists(ctx context.Context, name string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, r.key, normalize(name)).Result()
	if err != nil {
		return false, errors.Join(ErrStoreUnavailable, err)
	}
	return ok, nil
}

func (r *Redis) Add(ctx context.Context, name string) error {
	// SADD reports the number of newly added members, which makes the
	// claim atomic across instances.
	added, err := r.client.SAdd(ctx, r.key, normalize(name)).Result()
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if added == 0 {
		return ErrNameTaken
	}
	return nil
}

func (r *Redis) Remove(ctx context.Context, name string) error {
	if err := r.client.SRem(ctx, r.key, normalize(name)).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Close releases the underlying Redis client.
func (r *Redis) Close() error {
	return r.client.Close()
}
