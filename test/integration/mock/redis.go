package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var miniRedis *miniredis.Miniredis

// NewRedisURL starts a shared in-process redis on first use and returns its URL.
func NewRedisURL() string {
	redisOnce.Do(func() {
		var err error
		miniRedis, err = miniredis.Run()
		if err != nil {
			panic(err)
		}
	})
	return "redis://" + miniRedis.Addr()
}

// ClearRedis drops every key, resetting rate limit counters.
func ClearRedis() error {
	client := redis.NewClient(&redis.Options{Addr: miniRedis.Addr()})
	defer client.Close()
	return client.FlushAll(context.TODO()).Err()
}
