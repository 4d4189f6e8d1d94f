package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so sources can be backed by miniredis in tests
type Client interface {
	redis.UniversalClient
}
