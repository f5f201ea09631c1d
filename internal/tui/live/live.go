package live

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"speedcheck/internal/stats"
	"speedcheck/internal/tui/components"
	"speedcheck/internal/tui/styles"
	"speedcheck/internal/units"
)

const refreshRate = 125 * time.Millisecond

// Line redraws a single progress line in place with a carriage return.
// It is driven synchronously from the benchmark loop.
type Line struct {
	out      io.Writer
	bar      progress.Model
	latency  components.Sparkline
	hist     *stats.Histogram
	interval time.Duration

	phase    string
	total    int
	lastDraw time.Time
	width    int
}

func NewLine(out io.Writer) *Line {
	return &Line{
		out: out,
		bar: progress.New(
			progress.WithGradient(styles.GradientFrom, styles.GradientTo),
			progress.WithWidth(30),
		),
		latency:  components.NewSparkline(20, "", styles.Warn),
		hist:     stats.NewHistogram(),
		interval: refreshRate,
	}
}

func (l *Line) Start(phase string, total int) {
	l.phase = phase
	l.total = total
	l.lastDraw = time.Time{}
	l.hist.Reset()
	l.latency.Reset()
}

func (l *Line) Step(done int, last time.Duration) {
	l.hist.Record(last)
	l.latency.Add(uint64(last.Microseconds()))

	if done < l.total && time.Since(l.lastDraw) < l.interval {
		return
	}
	l.lastDraw = time.Now()
	l.draw(done)
}

// Finish blanks the line so the report starts on a clean row.
func (l *Line) Finish() {
	if l.width > 0 {
		fmt.Fprint(l.out, "\r"+strings.Repeat(" ", l.width)+"\r")
	}
	l.width = 0
}

func (l *Line) draw(done int) {
	pct := 0.0
	if l.total > 0 {
		pct = float64(done) / float64(l.total)
	}

	block := fmt.Sprintf("mean %s  max %s",
		units.Seconds(l.hist.Mean().Seconds(), "s"),
		units.Seconds(l.hist.Max().Seconds(), "s"),
	)
	line := fmt.Sprintf("%s %s %s %s",
		styles.Active.Render(fmt.Sprintf("%-12s", l.phase+":")),
		l.bar.ViewAs(pct),
		l.latency.View(),
		styles.Subtle.Render(block),
	)

	w := lipgloss.Width(line)
	if pad := l.width - w; pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	fmt.Fprint(l.out, "\r"+line)
	l.width = w
}
