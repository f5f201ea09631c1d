package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Entry is one metric of a summary.
type Entry struct {
	Key   string
	Value any
}

// Summary maps metric names to values, preserving insertion order.
type Summary struct {
	entries []Entry
	index   map[string]int
}

func NewSummary() *Summary {
	return &Summary{index: make(map[string]int)}
}

// Set adds key or replaces its value in place.
func (s *Summary) Set(key string, value any) {
	if i, ok := s.index[key]; ok {
		s.entries[i].Value = value
		return
	}
	s.index[key] = len(s.entries)
	s.entries = append(s.entries, Entry{Key: key, Value: value})
}

func (s *Summary) Get(key string) (any, bool) {
	i, ok := s.index[key]
	if !ok {
		return nil, false
	}
	return s.entries[i].Value, true
}

// String returns the value of key formatted with %v, or "" if absent.
func (s *Summary) String(key string) string {
	v, ok := s.Get(key)
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}

func (s *Summary) Len() int { return len(s.entries) }

func (s *Summary) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Numeric returns a copy where every "12.34 MiB/s" style value is split into
// a number stored under "<key> (MiB/s)". Other values are copied unchanged.
func (s *Summary) Numeric() *Summary {
	out := NewSummary()
	for _, e := range s.entries {
		str, ok := e.Value.(string)
		if !ok {
			out.Set(e.Key, e.Value)
			continue
		}
		key, value := SplitNumeric(e.Key, str)
		out.Set(key, value)
	}
	return out
}

// MarshalJSON encodes the summary as a flat object in insertion order.
func (s *Summary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", e.Key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteJSON writes the numeric form of s to filename.
func WriteJSON(s *Summary, filename string) error {
	data, err := json.Marshal(s.Numeric())
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

// SplitNumeric turns ("Write time", "0.5 s") into ("Write time (s)", 0.5).
// Plain numbers, strings not starting with a digit and strings whose digits
// do not form a number (addresses, versions) are returned unchanged.
func SplitNumeric(key, value string) (string, any) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return key, value
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return key, value
	}
	if !unicode.IsDigit([]rune(trimmed)[0]) {
		return key, value
	}

	var num, unit strings.Builder
	for _, r := range value {
		if unicode.IsDigit(r) || r == '.' {
			num.WriteRune(r)
		} else {
			unit.WriteRune(r)
		}
	}
	n, err := strconv.ParseFloat(num.String(), 64)
	if err != nil {
		return key, value
	}

	key = fmt.Sprintf("%s (%s)", key, strings.TrimSpace(unit.String()))
	if n == float64(int64(n)) {
		return key, int64(n)
	}
	return key, n
}
