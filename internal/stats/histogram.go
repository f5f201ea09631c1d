package stats

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const histogramMax = int64(10 * time.Minute / time.Microsecond)

// Histogram keeps a constant-size view of block latencies for live display.
// Reported results are always computed from Samples.
type Histogram struct {
	hist *hdrhistogram.Histogram
}

func NewHistogram() *Histogram {
	// 1us to 10min, 3 significant figures
	return &Histogram{hist: hdrhistogram.New(1, histogramMax, 3)}
}

// Record stores d in microseconds, clamped to the tracked range.
func (h *Histogram) Record(d time.Duration) {
	v := d.Microseconds()
	if v > histogramMax {
		v = histogramMax
	}
	h.hist.RecordValue(v)
}

func (h *Histogram) Mean() time.Duration {
	return time.Duration(h.hist.Mean() * float64(time.Microsecond))
}

func (h *Histogram) Max() time.Duration {
	return time.Duration(h.hist.Max()) * time.Microsecond
}

func (h *Histogram) Count() int64 {
	return h.hist.TotalCount()
}

func (h *Histogram) Reset() {
	h.hist.Reset()
}
