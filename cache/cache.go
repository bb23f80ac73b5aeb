package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/idamrohim/cgv-promo/entities"
	"github.com/redis/go-redis/v9"
)

// ScheduleCache keeps JSON snapshots of scan results keyed by
// (movie, location, status). The upstream system remains the source of
// truth; a cached index is only a short-lived convenience, so every entry
// carries a TTL. A nil client disables the cache entirely.
type ScheduleCache struct {
	Client *redis.Client
	TTL    time.Duration
}

const defaultTTL = 5 * time.Minute

func NewScheduleCache(client *redis.Client) *ScheduleCache {
	return &ScheduleCache{Client: client, TTL: defaultTTL}
}

func key(movieID, locationID string, status entities.MovieStatus) string {
	return fmt.Sprintf("scan:%s:%s:%s", movieID, locationID, status)
}

// Get returns the cached index for the triple, or (nil, false) on any miss
// or error.
func (c *ScheduleCache) Get(ctx context.Context, movieID, locationID string, status entities.MovieStatus) (entities.ScheduleIndex, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}
	data, err := c.Client.Get(ctx, key(movieID, locationID, status)).Bytes()
	if err != nil {
		return nil, false
	}
	var index entities.ScheduleIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, false
	}
	return index, true
}

// Put stores the index; failures are swallowed, the cache is best-effort.
func (c *ScheduleCache) Put(ctx context.Context, movieID, locationID string, status entities.MovieStatus, index entities.ScheduleIndex) {
	if c == nil || c.Client == nil || len(index) == 0 {
		return
	}
	data, err := json.Marshal(index)
	if err != nil {
		return
	}
	c.Client.Set(ctx, key(movieID, locationID, status), data, c.TTL)
}
