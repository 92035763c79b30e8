package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/cache"
	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
)

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewCache(client), mr
}

func samplePlan() *trip.TravelPlan {
	return &trip.TravelPlan{
		Destination: "Paris",
		Origin:      "NYC",
		Duration:    "5 days",
		TravelMonth: "June",
	}
}

func TestCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "Paris", samplePlan()))

	got, err := c.Get(ctx, "Paris")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Paris", got.Destination)
	assert.Equal(t, "5 days", got.Duration)
}

func TestCache_MissReturnsNilNil(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.Get(context.Background(), "Nowhere")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_KeyIsCaseInsensitive(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "Paris", samplePlan()))

	got, err := c.Get(ctx, "  PARIS ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Paris", got.Destination)
}

func TestCache_Delete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "Paris", samplePlan()))
	require.NoError(t, c.Delete(ctx, "Paris"))

	got, err := c.Get(ctx, "Paris")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_SetNilPlanIsNoOp(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, c.Set(context.Background(), "Paris", nil))
	assert.Empty(t, mr.Keys())
}

func TestCache_EntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "Paris", samplePlan()))
	mr.FastForward(2 * time.Hour)

	got, err := c.Get(ctx, "Paris")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_CorruptEntryIsAnError(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, mr.Set("plan:paris", "not json"))

	_, err := c.Get(context.Background(), "Paris")
	require.Error(t, err)
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := cache.Connect(context.Background(), "not-a-url")
	require.Error(t, err)
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := cache.Connect(context.Background(), "redis://127.0.0.1:1")
	require.Error(t, err)
}

func TestConnect_OK(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := cache.Connect(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()).Err())
}
