package stats

import "time"

// Progress observes a phase while it runs. Calls happen on the benchmark
// goroutine, outside the timed region of each block.
type Progress interface {
	Start(phase string, total int)
	Step(done int, last time.Duration)
	Finish()
}

// Discard is a Progress that ignores every update.
var Discard Progress = discard{}

type discard struct{}

func (discard) Start(string, int)       {}
func (discard) Step(int, time.Duration) {}
func (discard) Finish()                 {}
