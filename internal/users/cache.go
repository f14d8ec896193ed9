package users

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "hq:user:" // hq:user:{uid}

// Cache keeps resolved profiles in Redis so per-request resolution does not
// hit the record store every time. Every method degrades to a miss on error.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, uid string) (*User, bool) {
	data, err := c.client.Get(ctx, cacheKey(uid)).Result()
	if err != nil {
		return nil, false
	}

	var u User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		return nil, false
	}
	return &u, true
}

func (c *Cache) Set(ctx context.Context, u *User) {
	data, err := json.Marshal(u)
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKey(u.UID), data, c.ttl)
}

func (c *Cache) Invalidate(ctx context.Context, uid string) {
	c.client.Del(ctx, cacheKey(uid))
}

func cacheKey(uid string) string {
	return fmt.Sprintf("%s%s", cacheKeyPrefix, uid)
}
