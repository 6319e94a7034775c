// Package metrics keeps in-process counters for the simulated backend calls.
package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Outcome classifies how a call ended.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeFailed
	OutcomeAborted
	OutcomeThrottled
)

type callCounters struct {
	calls, failed, aborted, throttled Counter
	nanos                             Counter
}

// CallSnapshot is a point-in-time copy of one call's counters.
type CallSnapshot struct {
	Name      string
	Calls     uint64
	Failed    uint64
	Aborted   uint64
	Throttled uint64
	Total     time.Duration
}

// Calls aggregates counters per call name. The zero value is ready to use.
type Calls struct {
	mu    sync.Mutex
	names map[string]*callCounters
}

func (c *Calls) counters(name string) *callCounters {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.names == nil {
		c.names = map[string]*callCounters{}
	}
	cc, ok := c.names[name]
	if !ok {
		cc = &callCounters{}
		c.names[name] = cc
	}
	return cc
}

func (c *Calls) Record(name string, outcome Outcome, d time.Duration) {
	cc := c.counters(name)
	cc.calls.Inc()
	if d > 0 {
		atomic.AddUint64(&cc.nanos.value, uint64(d))
	}

	switch outcome {
	case OutcomeFailed:
		cc.failed.Inc()
	case OutcomeAborted:
		cc.aborted.Inc()
	case OutcomeThrottled:
		cc.throttled.Inc()
	}
}

// Snapshot lists every recorded call, sorted by name.
func (c *Calls) Snapshot() []CallSnapshot {
	c.mu.Lock()
	out := make([]CallSnapshot, 0, len(c.names))
	for name, cc := range c.names {
		out = append(out, CallSnapshot{
			Name:      name,
			Calls:     cc.calls.Load(),
			Failed:    cc.failed.Load(),
			Aborted:   cc.aborted.Load(),
			Throttled: cc.throttled.Load(),
			Total:     time.Duration(cc.nanos.Load()),
		})
	}
	c.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
