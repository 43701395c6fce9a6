package routers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRedisAddr(t *testing.T) {
	host, port := splitRedisAddr("redis.internal:6380")
	assert.Equal(t, "redis.internal", host)
	assert.Equal(t, 6380, port)

	// ohne Port: Redis-Default
	host, port = splitRedisAddr("localhost")
	assert.Equal(t, "localhost", host)
	assert.Equal(t, 6379, port)

	// nicht numerischer Port: Redis-Default
	host, port = splitRedisAddr("localhost:abc")
	assert.Equal(t, "localhost", host)
	assert.Equal(t, 6379, port)
}
