package units

import (
	"fmt"
	"math"
	"strconv"
)

var (
	binaryLadder  = []string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi", "Yi"}
	decimalLadder = []string{"", "K", "M", "G", "T", "P", "E", "Z", "Y"}
	timeLadder    = []string{"", "m", "u", "n", "p", "f", "a", "z", "y"}
)

// Bytes renders n with base-1024 prefixes, e.g. Bytes(1536, "B") == "1.50 KiB".
func Bytes(n float64, suffix string) string {
	v, unit := scaleDown(n, 1024, binaryLadder)
	return render(v, unit, suffix)
}

// Bits renders n with base-1000 prefixes, e.g. Bits(2e6, "bps") == "2 Mbps".
func Bits(n float64, suffix string) string {
	v, unit := scaleDown(n, 1000, decimalLadder)
	return render(v, unit, suffix)
}

// Seconds renders sub-second values with milli, micro, nano... prefixes.
// Values of one second or more are printed in the base unit.
func Seconds(sec float64, suffix string) string {
	if sec == 0 {
		return render(0, "", suffix)
	}
	last := len(timeLadder) - 1
	for _, unit := range timeLadder[:last] {
		// stay on this unit when the next one would round up to 1000
		if math.Abs(sec) >= 1 || math.Abs(round2(sec*1000)) >= 1000 {
			return render(sec, unit, suffix)
		}
		sec *= 1000
	}
	return render(sec, timeLadder[last], suffix)
}

// Round rounds v to the given number of decimal places and formats it
// without exponent notation.
func Round(v float64, places int) string {
	p := math.Pow(10, float64(places))
	return strconv.FormatFloat(math.Round(v*p)/p, 'f', -1, 64)
}

// scaleDown divides by base until the magnitude, as rendered, fits below it.
// It clamps at the last unit.
func scaleDown(num, base float64, ladder []string) (float64, string) {
	last := len(ladder) - 1
	for _, unit := range ladder[:last] {
		if math.Abs(round2(num)) < base {
			return num, unit
		}
		num /= base
	}
	return num, ladder[last]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func render(v float64, unit, suffix string) string {
	v = round2(v)
	if v == math.Trunc(v) {
		return fmt.Sprintf("%s %s%s", strconv.FormatFloat(v, 'f', 0, 64), unit, suffix)
	}
	return fmt.Sprintf("%.2f %s%s", v, unit, suffix)
}
