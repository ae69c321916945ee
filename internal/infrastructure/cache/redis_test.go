package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs only against a real server, e.g. REDIS_TEST_ADDR=localhost:6379.
func TestRedisStoreRoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())

	store := NewRedisStore(client)
	analysis := sampleAnalysis()
	defer store.Delete(ctx, analysis.NoteID)

	_, ok, err := store.Get(ctx, analysis.NoteID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, analysis, time.Minute))
	got, ok, err := store.Get(ctx, analysis.NoteID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, analysis.AnalysisResult(), got.AnalysisResult())

	ttl, err := client.TTL(ctx, analysisKey(analysis.NoteID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
