// Package prof collects aggregated wall-clock timings per stage label.
package prof

import (
	"sort"
	"sync"
	"time"
)

// Stat is the aggregate timing for one label.
type Stat struct {
	Label string
	Count int
	Total time.Duration
}

// Mean is the average duration of one tracked call.
func (s Stat) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

var (
	mu     sync.Mutex
	counts = map[string]int{}
	totals = map[string]time.Duration{}
)

// Track adds the time since start to the label's running total. Use with
// defer: defer prof.Track(time.Now(), "stage").
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	counts[label]++
	totals[label] += elapsed
	mu.Unlock()
}

// SnapshotAndReset returns the aggregated stats sorted by total time,
// largest first, and clears the record.
func SnapshotAndReset() []Stat {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Stat, 0, len(totals))
	for label, total := range totals {
		out = append(out, Stat{Label: label, Count: counts[label], Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total == out[j].Total {
			return out[i].Label < out[j].Label
		}
		return out[i].Total > out[j].Total
	})
	counts = map[string]int{}
	totals = map[string]time.Duration{}
	return out
}
