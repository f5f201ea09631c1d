package live

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLineDrawsAndClears(t *testing.T) {
	var buf bytes.Buffer
	l := NewLine(&buf)
	l.interval = time.Hour

	l.Start("Writing", 3)
	l.Step(1, time.Millisecond)
	l.Step(2, 2*time.Millisecond) // throttled
	first := buf.Len()
	if first == 0 || !strings.Contains(buf.String(), "Writing:") {
		t.Fatalf("first step should draw, got %q", buf.String())
	}
	if strings.Count(buf.String(), "\r") != 1 {
		t.Errorf("second step should be throttled, got %q", buf.String())
	}

	l.Step(3, time.Millisecond)
	if !strings.Contains(buf.String(), "100%") {
		t.Errorf("final step must draw 100%%, got %q", buf.String())
	}

	l.Finish()
	if !strings.HasSuffix(buf.String(), "\r") {
		t.Errorf("Finish should return the cursor, got %q", buf.String())
	}

	buf.Reset()
	l.Finish()
	if buf.Len() != 0 {
		t.Errorf("second Finish wrote %q", buf.String())
	}
}
