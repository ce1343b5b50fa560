package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewFromClient(rdb, time.Minute), mr
}

func TestAvailabilityRoundTrip(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	_, ok := client.GetAvailability(ctx, "STR101", "2026-03-02")
	assert.False(t, ok)

	payload := []byte(`{"room":"STR101","is_available":true}`)
	client.SetAvailability(ctx, "STR101", "2026-03-02", payload)

	got, ok := client.GetAvailability(ctx, "STR101", "2026-03-02")
	require.True(t, ok)
	assert.Equal(t, payload, got)

	// Another date on the same room is a separate entry.
	_, ok = client.GetAvailability(ctx, "STR101", "2026-03-03")
	assert.False(t, ok)
}

func TestInvalidateRoom_DropsAllDates(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	client.SetAvailability(ctx, "STR101", "2026-03-02", []byte("a"))
	client.SetAvailability(ctx, "STR101", "2026-03-03", []byte("b"))
	client.SetAvailability(ctx, "STR102", "2026-03-02", []byte("c"))

	client.InvalidateRoom(ctx, "STR101")

	_, ok := client.GetAvailability(ctx, "STR101", "2026-03-02")
	assert.False(t, ok)
	_, ok = client.GetAvailability(ctx, "STR101", "2026-03-03")
	assert.False(t, ok)

	// Other rooms are untouched.
	got, ok := client.GetAvailability(ctx, "STR102", "2026-03-02")
	require.True(t, ok)
	assert.Equal(t, []byte("c"), got)
}

func TestSummaryRoundTrip(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	_, ok := client.GetSummary(ctx)
	assert.False(t, ok)

	client.SetSummary(ctx, []byte(`{"model_counts":{}}`))
	got, ok := client.GetSummary(ctx)
	require.True(t, ok)
	assert.NotEmpty(t, got)

	client.InvalidateSummary(ctx)
	_, ok = client.GetSummary(ctx)
	assert.False(t, ok)
}

func TestEntriesExpire(t *testing.T) {
	client, mr := newTestClient(t)
	ctx := context.Background()

	client.SetAvailability(ctx, "STR101", "2026-03-02", []byte("a"))
	mr.FastForward(2 * time.Minute)

	_, ok := client.GetAvailability(ctx, "STR101", "2026-03-02")
	assert.False(t, ok)
}

// A nil client is a valid no-op cache.
func TestNilClient(t *testing.T) {
	var client *Client
	ctx := context.Background()

	_, ok := client.GetAvailability(ctx, "STR101", "2026-03-02")
	assert.False(t, ok)
	client.SetAvailability(ctx, "STR101", "2026-03-02", []byte("a"))
	client.InvalidateRoom(ctx, "STR101")
	client.InvalidateSummary(ctx)
	_, ok = client.GetSummary(ctx)
	assert.False(t, ok)
	assert.NoError(t, client.Close())
}
