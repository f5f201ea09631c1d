package units

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestBytes(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1 KiB"},
		{1536, "1.50 KiB"},
		{256 * 1024 * 1024, "256 MiB"},
		{3 * math.Pow(1024, 4), "3 TiB"},
		{math.Pow(1024, 8), "1 YiB"},
		{2048 * math.Pow(1024, 8), "2048 YiB"},
	}
	for _, c := range cases {
		if got := Bytes(c.in, "B"); got != c.want {
			t.Errorf("Bytes(%v) = %q, want %q", c.in, got, c.want)
		}
	}
	if got := Bytes(1024*1024*12.5, "B/s"); got != "12.50 MiB/s" {
		t.Errorf("Bytes with rate suffix = %q", got)
	}
}

func TestBits(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0 bps"},
		{999, "999 bps"},
		{1000, "1 Kbps"},
		{1024, "1.02 Kbps"},
		{8e9, "8 Gbps"},
		{123456789, "123.46 Mbps"},
	}
	for _, c := range cases {
		if got := Bits(c.in, "bps"); got != c.want {
			t.Errorf("Bits(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSeconds(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0 s"},
		{1, "1 s"},
		{2.5, "2.50 s"},
		{120, "120 s"},
		{0.5, "500 ms"},
		{0.00125, "1.25 ms"},
		{0.000244140625, "244.14 us"},
		{math.Pow(2, -30), "931.32 ps"},
	}
	for _, c := range cases {
		if got := Seconds(c.in, "s"); got != c.want {
			t.Errorf("Seconds(%v) = %q, want %q", c.in, got, c.want)
		}
	}
	if got := Seconds(1e-30, "s"); !strings.HasSuffix(got, " ys") {
		t.Errorf("Seconds(1e-30) = %q, want clamp at ys", got)
	}
}

func TestRoundingCarriesToNextUnit(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{Bytes(1023.999, "B"), "1 KiB"},
		{Bytes(1048575.9, "B/s"), "1 MiB/s"},
		{Bits(999.999, "bps"), "1 Kbps"},
		{Bits(999994999, "bps"), "999.99 Mbps"},
		{Seconds(0.9999999, "s"), "1 s"},
		{Seconds(0.0009999999, "s"), "1 ms"},
		{Seconds(0.00099, "s"), "990 us"},
		{Bytes(1.999, "B"), "2 B"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}

func TestMagnitudeBelowBase(t *testing.T) {
	for _, n := range []float64{1, 1023, 1025, 1023.999, 999.999, 1048575.9, 1 << 20, 1 << 30, 7.7e12, 9.1e17} {
		num := strings.Fields(Bytes(n, "B"))[0]
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			t.Fatalf("unparsable magnitude %q", num)
		}
		if v >= 1024 {
			t.Errorf("Bytes(%v) magnitude %v not below base", n, v)
		}

		num = strings.Fields(Bits(n, "bps"))[0]
		v, err = strconv.ParseFloat(num, 64)
		if err != nil {
			t.Fatalf("unparsable magnitude %q", num)
		}
		if v >= 1000 {
			t.Errorf("Bits(%v) magnitude %v not below base", n, v)
		}
	}

	for _, sec := range []float64{0.9999999, 0.0009999999, 0.5, 2.5e-7} {
		num := strings.Fields(Seconds(sec, "s"))[0]
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			t.Fatalf("unparsable magnitude %q", num)
		}
		if v >= 1000 || v < 1 {
			t.Errorf("Seconds(%v) magnitude %v outside [1, 1000)", sec, v)
		}
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1.234567, "1.23457"},
		{0.0000123, "0.00001"},
		{2, "2"},
		{0, "0"},
	}
	for _, c := range cases {
		if got := Round(c.in, 5); got != c.want {
			t.Errorf("Round(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
