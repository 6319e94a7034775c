package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(100), c.Load())
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(time.Millisecond)
	assert.GreaterOrEqual(t, timer.Duration(), time.Millisecond)
}

func TestCalls(t *testing.T) {
	var calls Calls
	calls.Record("login", OutcomeOK, 2*time.Millisecond)
	calls.Record("login", OutcomeFailed, time.Millisecond)
	calls.Record("create_order", OutcomeAborted, 0)
	calls.Record("create_order", OutcomeThrottled, 0)

	snap := calls.Snapshot()
	require.Len(t, snap, 2)

	assert.Equal(t, "create_order", snap[0].Name)
	assert.Equal(t, uint64(2), snap[0].Calls)
	assert.Equal(t, uint64(1), snap[0].Aborted)
	assert.Equal(t, uint64(1), snap[0].Throttled)

	assert.Equal(t, "login", snap[1].Name)
	assert.Equal(t, uint64(2), snap[1].Calls)
	assert.Equal(t, uint64(1), snap[1].Failed)
	assert.Equal(t, 3*time.Millisecond, snap[1].Total)
}

func TestCalls_EmptySnapshot(t *testing.T) {
	var calls Calls
	assert.Empty(t, calls.Snapshot())
}
