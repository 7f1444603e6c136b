package mock

import (
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisMock *Redis

// Redis is a miniredis server shared by all scenarios.
type Redis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// NewRedis starts the shared server on first use.
func NewRedis() *Redis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisMock = &Redis{
			Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
			Server: server,
		}
	})
	return redisMock
}

// Clear drops every key, including rate limit counters.
func (r *Redis) Clear() {
	r.Server.FlushAll()
}
