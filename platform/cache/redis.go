package cache

import (
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"
)

// CreateRedisPool dials addr, either a redis:// URL or a host:port.
func CreateRedisPool(addr string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 60 * time.Second,
		Dial: func() (redis.Conn, error) {
			if strings.Contains(addr, "://") {
				return redis.DialURL(addr)
			}
			return redis.Dial("tcp", addr)
		},
	}
}
