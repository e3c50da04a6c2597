package gapgo

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Stopwatch accumulates time per named bucket. A nil *Stopwatch ignores
// every call, so solvers can time their phases unconditionally.
type Stopwatch struct {
	mu           sync.Mutex
	Buckets      map[string]time.Duration
	BucketStarts map[string]time.Time
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{
		Buckets:      make(map[string]time.Duration),
		BucketStarts: make(map[string]time.Time),
	}
}

func (s *Stopwatch) Start(b string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.BucketStarts[b] = time.Now()
	if _, ok := s.Buckets[b]; !ok {
		s.Buckets[b] = 0
	}
}

func (s *Stopwatch) Stop(b string) {
	if s == nil {
		return
	}
	end := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	start, ok := s.BucketStarts[b]
	if !ok {
		return
	}
	s.Buckets[b] += end.Sub(start)
	delete(s.BucketStarts, b)
}

// Add credits d to bucket b directly. Concurrent bands use it because they
// would otherwise share a single start time per bucket.
func (s *Stopwatch) Add(b string, d time.Duration) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Buckets[b] += d
}

func (s *Stopwatch) Elapsed(b string) time.Duration {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Buckets[b]
}

func (s *Stopwatch) Results() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.Buckets))
	for k := range s.Buckets {
		names = append(names, k)
	}
	sort.Strings(names)
	var out strings.Builder
	for _, k := range names {
		fmt.Fprintf(&out, "%s: %.4f\n", k, s.Buckets[k].Seconds())
	}
	return out.String()
}
