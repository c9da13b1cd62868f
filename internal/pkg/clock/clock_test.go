//go:build unit

package clock_test

import (
	"sync"
	"testing"
	"time"

	"groomer-crm/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2030, 3, 14, 12, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start.Add(90*time.Minute), c.Add(90*time.Minute))

	next := time.Date(2030, 3, 15, 9, 0, 0, 0, time.UTC)
	c.Set(next)
	assert.Equal(t, next, c.Now())
}

func TestMockClock_ConcurrentAdvance(t *testing.T) {
	c := clock.NewMockClock(time.Time{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(time.Minute)
			_ = c.Now()
		}()
	}
	wg.Wait()

	assert.Equal(t, time.Time{}.Add(10*time.Minute), c.Now())
}

func TestRealClock(t *testing.T) {
	before := time.Now()
	got := clock.NewRealClock().Now()
	assert.False(t, got.Before(before))
}
