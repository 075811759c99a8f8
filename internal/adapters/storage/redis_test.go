package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ fiber.Storage = (*Redis)(nil)

func testRedis(t *testing.T) *Redis {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	r := NewRedis(addr, os.Getenv("REDIS_PASSWORD"), 0, "sms-admin-test:")
	if !r.Healthy(context.Background()) {
		t.Skipf("redis at %s not reachable", addr)
	}
	t.Cleanup(func() {
		_ = r.Reset()
		_ = r.Close()
	})
	return r
}

func TestRedisStorage(t *testing.T) {
	r := testRedis(t)

	v, err := r.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, r.Set("k", []byte("v"), time.Minute))
	v, err = r.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)

	require.NoError(t, r.Delete("k"))
	v, _ = r.Get("k")
	assert.Nil(t, v)

	require.NoError(t, r.Set("a", []byte("1"), 0))
	require.NoError(t, r.Set("b", []byte("2"), 0))
	require.NoError(t, r.Reset())
	v, _ = r.Get("a")
	assert.Nil(t, v)
}

func TestEmptyKeysAreIgnored(t *testing.T) {
	r := NewRedis("127.0.0.1:1", "", 0, "x:")
	defer r.Close()

	v, err := r.Get("")
	assert.NoError(t, err)
	assert.Nil(t, v)
	assert.NoError(t, r.Set("", []byte("v"), 0))
	assert.NoError(t, r.Set("k", nil, 0))
	assert.NoError(t, r.Delete(""))
	assert.False(t, r.Healthy(context.Background()))
}

func TestNilIsUnhealthy(t *testing.T) {
	var r *Redis
	assert.False(t, r.Healthy(context.Background()))
}
