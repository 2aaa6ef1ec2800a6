package redis

import (
	"fmt"
)

// Key prefix used when the config does not set one
const defaultKeyPrefix = "squares"

// valueKey returns the Redis key holding the value stored under key
func valueKey(prefix, key string) string {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return fmt.Sprintf("%s:kv:%s", prefix, key)
}
