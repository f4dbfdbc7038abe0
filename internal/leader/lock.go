package leader

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only if this instance still owns it.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Lock is a best-effort leader election on a single redis key. Each
// instance carries a random id; whoever sets the key first leads until
// the TTL lapses.
type Lock struct {
	client     *redis.Client
	key        string
	instanceID string
	ttl        time.Duration
}

func New(client *redis.Client, key string, ttl time.Duration) *Lock {
	return &Lock{
		client:     client,
		key:        key,
		instanceID: uuid.NewString(),
		ttl:        ttl,
	}
}

// TryAcquire reports whether this instance is the leader. A holder
// refreshes its own TTL on every call.
func (l *Lock) TryAcquire(ctx context.Context) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key, l.instanceID, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to set leader lock: %w", err)
	}
	if ok {
		return true, nil
	}

	holder, err := l.client.Get(ctx, l.key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to read leader lock: %w", err)
	}
	if holder != l.instanceID {
		return false, nil
	}
	if err := l.client.Expire(ctx, l.key, l.ttl).Err(); err != nil {
		return false, fmt.Errorf("failed to refresh leader lock: %w", err)
	}
	return true, nil
}

// Release gives the lock up on shutdown so a follower takes over
// without waiting out the TTL.
func (l *Lock) Release(ctx context.Context) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.key}, l.instanceID).Err(); err != nil {
		return fmt.Errorf("failed to release leader lock: %w", err)
	}
	return nil
}
