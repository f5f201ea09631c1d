package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitNumeric(t *testing.T) {
	cases := []struct {
		key, value string
		wantKey    string
		want       any
	}{
		{"Write speed (avg)", "12.34 MiB/s", "Write speed (avg) (MiB/s)", 12.34},
		{"Write time", "0.00123 s", "Write time (s)", 0.00123},
		{"Read block size", "512 B", "Read block size (B)", int64(512)},
		{"Transfer speed (max)", "1 Gbps", "Transfer speed (max) (Gbps)", int64(1)},
		{"Test file full path", "/tmp/.disk_performance_test.tmp", "Test file full path", "/tmp/.disk_performance_test.tmp"},
		{"Server address", "127.0.0.1:5201", "Server address", "127.0.0.1:5201"},
		{"Plain", "42.5", "Plain", "42.5"},
		{"Empty", "", "Empty", ""},
	}
	for _, c := range cases {
		k, v := SplitNumeric(c.key, c.value)
		if k != c.wantKey || v != c.want {
			t.Errorf("SplitNumeric(%q, %q) = (%q, %#v), want (%q, %#v)", c.key, c.value, k, v, c.wantKey, c.want)
		}
	}
}

func TestSummaryOrderAndReplace(t *testing.T) {
	s := NewSummary()
	s.Set("b", "1 s")
	s.Set("a", 3)
	s.Set("b", "2 s")

	entries := s.Entries()
	if len(entries) != 2 || entries[0].Key != "b" || entries[1].Key != "a" {
		t.Fatalf("unexpected entries %+v", entries)
	}
	if s.String("b") != "2 s" || s.String("missing") != "" {
		t.Errorf("String lookups wrong: %q %q", s.String("b"), s.String("missing"))
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"b":"2 s","a":3}` {
		t.Errorf("MarshalJSON = %s", data)
	}
}

func TestWriteJSONKeepsEveryMetric(t *testing.T) {
	s := NewSummary()
	s.Set("Test file full path", "/data/x")
	s.Set("Write speed (avg)", "100.50 MiB/s")
	s.Set("Read blocks", 1024)
	s.Set("Read time", "0.25 s")

	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteJSON(s, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON %s: %v", data, err)
	}
	want := map[string]any{
		"Test file full path":       "/data/x",
		"Write speed (avg) (MiB/s)": 100.5,
		"Read blocks":               1024.0,
		"Read time (s)":             0.25,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d keys, want %d: %v", len(got), len(want), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%q = %#v, want %#v", k, got[k], v)
		}
	}
}
