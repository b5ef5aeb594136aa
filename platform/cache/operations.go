package cache

import (
	"fmt"

	"github.com/gomodule/redigo/redis"
)

func Set(key string, value interface{}, conn redis.Conn) error {
	reply, err := redis.String(conn.Do("SET", key, value))
	if err != nil {
		return err
	}
	if reply != "OK" {
		return fmt.Errorf("SET %s: unexpected reply %q", key, reply)
	}
	return nil
}

func Del(key string, conn redis.Conn) error {
	_, err := conn.Do("DEL", key)
	return err
}

// HSET writes several field/value pairs at once.
func HSET(key string, conn redis.Conn, fieldValues ...interface{}) error {
	_, err := conn.Do("HSET", redis.Args{}.Add(key).Add(fieldValues...)...)
	return err
}

func RPUSH(key string, values []interface{}, conn redis.Conn) error {
	_, err := conn.Do("RPUSH", redis.Args{}.Add(key).AddFlat(values)...)
	return err
}

func PUBLISH(channel string, message interface{}, conn redis.Conn) error {
	_, err := conn.Do("PUBLISH", channel, message)
	return err
}
