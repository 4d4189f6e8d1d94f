package sources

import (
	"context"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-codex/internal/redis"
)

// DefaultKeyPrefix namespaces documents stored in redis
const DefaultKeyPrefix = "codex:source:"

// RedisConfig configures a redis-backed source
type RedisConfig struct {
	Client    redisclient.Client
	KeyPrefix string
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisSource struct {
	client redisclient.Client
	prefix string
}

// NewRedis creates a source reading each document from the string key
// <prefix><name>
func NewRedis(cfg *RedisConfig) (Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &redisSource{
		client: cfg.Client,
		prefix: prefix,
	}, nil
}

func (s *redisSource) Read(ctx context.Context, name string) ([]byte, error) {
	key := s.prefix + name
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.SourceUnavailablef("%s not found in %s", name, s.Describe(name))
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read %s", s.Describe(name))
	}

	return data, nil
}

func (s *redisSource) Describe(name string) string {
	return "redis:" + s.prefix + name
}
