package stats

import (
	"errors"
	"time"
)

// ErrNoSamples is returned when rates are requested from an empty phase.
var ErrNoSamples = errors.New("no samples recorded")

// Samples is the ordered set of per-block durations of one phase.
type Samples struct {
	durations []time.Duration
	total     time.Duration
	min       time.Duration
	max       time.Duration
}

func NewSamples(capacity int) *Samples {
	return &Samples{durations: make([]time.Duration, 0, capacity)}
}

// Add records one block. Durations are floored at one clock tick so rate
// computations never divide by zero.
func (s *Samples) Add(d time.Duration) {
	if d <= 0 {
		d = time.Nanosecond
	}
	if len(s.durations) == 0 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
	s.total += d
	s.durations = append(s.durations, d)
}

func (s *Samples) Len() int { return len(s.durations) }

func (s *Samples) Total() time.Duration { return s.total }

func (s *Samples) Min() time.Duration { return s.min }

func (s *Samples) Max() time.Duration { return s.max }

// Durations returns a copy of the recorded samples in insertion order.
func (s *Samples) Durations() []time.Duration {
	out := make([]time.Duration, len(s.durations))
	copy(out, s.durations)
	return out
}

// Rates holds throughput in units per second (bytes or bits).
type Rates struct {
	Avg float64
	Max float64
	Min float64
}

// Rates computes avg = total/sum(S), max = block/min(S), min = block/max(S).
// Extremes come from the single fastest and slowest block, not from a mean of
// per-block rates.
func (s *Samples) Rates(blockUnits, totalUnits float64) (Rates, error) {
	if len(s.durations) == 0 {
		return Rates{}, ErrNoSamples
	}
	return Rates{
		Avg: totalUnits / s.total.Seconds(),
		Max: blockUnits / s.min.Seconds(),
		Min: blockUnits / s.max.Seconds(),
	}, nil
}
