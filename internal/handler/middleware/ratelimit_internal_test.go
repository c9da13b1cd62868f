//go:build unit

package middleware

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLimiter_SweepsIdleVisitors(t *testing.T) {
	now := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	l := NewLocalLimiter(2, time.Minute)
	l.now = func() time.Time { return now }
	l.lastSweep = now
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		_, err := l.Allow(ctx, fmt.Sprintf("ip-%d", i))
		require.NoError(t, err)
	}
	assert.Len(t, l.visitors, 100)

	now = now.Add(30 * time.Second)
	_, _ = l.Allow(ctx, "ip-0")
	assert.Len(t, l.visitors, 100, "1ウィンドウ未満では掃除しない")

	now = now.Add(45 * time.Second)
	_, _ = l.Allow(ctx, "fresh")
	assert.Len(t, l.visitors, 2, "アイドルなキーは削除され、最近使われたキーは残る")
	assert.Contains(t, l.visitors, "ip-0")
	assert.Contains(t, l.visitors, "fresh")
}

func TestLocalLimiter_SweepKeepsActiveBucket(t *testing.T) {
	now := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	l := NewLocalLimiter(2, time.Hour)
	l.now = func() time.Time { return now }
	l.lastSweep = now
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "k")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "k")
	assert.True(t, ok)

	now = now.Add(59 * time.Minute)
	ok, _ = l.Allow(ctx, "k")
	assert.True(t, ok, "59分で1トークン以上補充される")
	ok, _ = l.Allow(ctx, "k")
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	_, _ = l.Allow(ctx, "other")
	assert.Contains(t, l.visitors, "k", "直近に使われたバケットは掃除されない")
}
