package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/creatorhub-backend/internal/domain/usage"
	"github.com/yungbote/creatorhub-backend/internal/platform/logger"
)

// incrementCapped bumps one hash field unless it already reached the cap.
// Returns {count, incremented}.
var incrementCapped = goredis.NewScript(`
local cur = tonumber(redis.call('HGET', KEYS[1], ARGV[1]) or '0')
local cap = tonumber(ARGV[2])
if cur >= cap then
	return {cur, 0}
end
cur = redis.call('HINCRBY', KEYS[1], ARGV[1], 1)
return {cur, 1}
`)

// UsageCounters keeps per-user feature counters in one Redis hash per user.
type UsageCounters struct {
	rdb    goredis.UniversalClient
	log    *logger.Logger
	prefix string
}

func NewUsageCounters(rdb goredis.UniversalClient, log *logger.Logger, prefix string) *UsageCounters {
	if prefix == "" {
		prefix = "usage"
	}
	return &UsageCounters{rdb: rdb, log: log.With("service", "RedisUsageCounters"), prefix: prefix}
}

func (u *UsageCounters) key(userID uuid.UUID) string {
	return u.prefix + ":" + userID.String()
}

func (u *UsageCounters) Counts(ctx context.Context, userID uuid.UUID) (map[usage.Feature]int, error) {
	raw, err := u.rdb.HGetAll(ctx, u.key(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis usage counts: %w", err)
	}
	out := make(map[usage.Feature]int, len(raw))
	for field, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil {
			u.log.Warn("Bad usage counter value", "field", field, "value", v)
			continue
		}
		out[usage.Feature(field)] = n
	}
	return out, nil
}

func (u *UsageCounters) IncrementCapped(ctx context.Context, userID uuid.UUID, feature usage.Feature, limit int) (int, bool, error) {
	res, err := incrementCapped.Run(ctx, u.rdb, []string{u.key(userID)}, string(feature), limit).Int64Slice()
	if err != nil {
		return 0, false, fmt.Errorf("redis usage increment: %w", err)
	}
	if len(res) != 2 {
		return 0, false, fmt.Errorf("redis usage increment: unexpected reply %v", res)
	}
	return int(res[0]), res[1] == 1, nil
}
