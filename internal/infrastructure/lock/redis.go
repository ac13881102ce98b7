package lock

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	idgen "github.com/riskibarqy/fantasy-scoring/internal/platform/id"
	"github.com/riskibarqy/fantasy-scoring/internal/platform/resilience"
)

const keyPrefix = "fantasy-scoring:lock:"

// releaseScript deletes the key only while it still holds our token.
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

type redisClient interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd
}

// RedisLocker holds cross-process locks with SET NX PX. Calls go through a
// circuit breaker so an unavailable Redis fails fast.
type RedisLocker struct {
	client  redisClient
	ttl     time.Duration
	ids     idgen.Generator
	breaker *resilience.CircuitBreaker
}

func NewRedisLocker(client redisClient, ttl time.Duration, ids idgen.Generator, breaker *resilience.CircuitBreaker) *RedisLocker {
	if breaker == nil {
		breaker = resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig())
	}
	return &RedisLocker{client: client, ttl: ttl, ids: ids, breaker: breaker}
}

func (l *RedisLocker) TryLock(ctx context.Context, key string) (func(context.Context) error, bool, error) {
	token, err := l.ids.NewID()
	if err != nil {
		return nil, false, crerr.Wrap(err, "generate lock token")
	}

	redisKey := keyPrefix + key
	acquired := false
	err = l.breaker.Execute(ctx, func(ctx context.Context) error {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return err
		}
		acquired = ok
		return nil
	})
	if err != nil {
		return nil, false, crerr.Wrapf(err, "acquire lock key=%s", key)
	}
	if !acquired {
		return nil, false, nil
	}

	unlock := func(ctx context.Context) error {
		err := l.breaker.Execute(ctx, func(ctx context.Context) error {
			return l.client.Eval(ctx, releaseScript, []string{redisKey}, token).Err()
		})
		if err != nil {
			return crerr.Wrapf(err, "release lock key=%s", key)
		}
		return nil
	}
	return unlock, true, nil
}
