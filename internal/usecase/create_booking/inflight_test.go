package create_booking

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInFlightGuard_BeginBlocksDuplicate(t *testing.T) {
	guard := NewInFlightGuard()

	require.NoError(t, guard.Begin("alice|venue-1|2024-06-10|2024-06-13"))
	assert.ErrorIs(t, guard.Begin("alice|venue-1|2024-06-10|2024-06-13"), ErrSubmissionInFlight)

	// Другой ключ не подавляется
	require.NoError(t, guard.Begin("alice|venue-1|2024-06-20|2024-06-22"))
}

func TestInFlightGuard_FinishReleasesKey(t *testing.T) {
	guard := NewInFlightGuard()
	key := "alice|venue-1|2024-06-10|2024-06-13"

	require.NoError(t, guard.Begin(key))
	guard.Finish(key, true)
	require.NoError(t, guard.Begin(key))

	guard.Finish(key, false)
	require.NoError(t, guard.Begin(key))
}

func TestInFlightGuard_FinishUnknownKeyIsNoop(t *testing.T) {
	guard := NewInFlightGuard()
	guard.Finish("never-begun", true)
}

func TestInFlightGuard_ConcurrentBegin(t *testing.T) {
	guard := NewInFlightGuard()
	key := "alice|venue-1|2024-06-10|2024-06-13"

	const attempts = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	acquired := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if guard.Begin(key) == nil {
				mu.Lock()
				acquired++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, acquired)
}
