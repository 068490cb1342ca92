package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%d", host, port.Int())})
	require.NoError(t, rdb.Ping(ctx).Err())

	teardown := func() {
		_ = rdb.Close()
		_ = container.Terminate(ctx)
	}

	return rdb, teardown
}

func TestRateLimitMiddleware(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(rdb, 2, time.Minute)(next)

	do := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/email", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	t.Run("requests under the limit pass", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do("10.0.0.1:1234"))
		assert.Equal(t, http.StatusOK, do("10.0.0.1:1234"))
	})

	t.Run("requests over the limit are rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:1234"))
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do("10.0.0.2:1234"))
	})
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}) // nothing listens here
	defer rdb.Close()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(rdb, 1, time.Minute)(next)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/auth/email", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}
