package cache

import (
	"context"
	"testing"

	"github.com/idamrohim/cgv-promo/entities"
	"github.com/stretchr/testify/assert"
)

func TestScheduleCacheDegradesWithoutRedis(t *testing.T) {
	ctx := context.Background()
	index := entities.ScheduleIndex{"20260301": {{ScheduleID: "sch-1"}}}

	var nilCache *ScheduleCache
	got, ok := nilCache.Get(ctx, "mv-1", "loc-1", entities.StatusPlaying)
	assert.False(t, ok)
	assert.Nil(t, got)
	nilCache.Put(ctx, "mv-1", "loc-1", entities.StatusPlaying, index)

	noClient := NewScheduleCache(nil)
	got, ok = noClient.Get(ctx, "mv-1", "loc-1", entities.StatusPlaying)
	assert.False(t, ok)
	assert.Nil(t, got)
	noClient.Put(ctx, "mv-1", "loc-1", entities.StatusPlaying, index)
}
