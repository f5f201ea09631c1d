package disk

import (
	"fmt"
	"io"

	"speedcheck/internal/report"
	"speedcheck/internal/stats"
	"speedcheck/internal/units"
)

const roundPrecision = 5

// Summary derives the reported metrics. Each phase's rates come only from
// that phase's samples. A read phase that stopped before its first block
// reports zero blocks and zero rates.
func (r *Result) Summary() (*report.Summary, error) {
	wBlock := float64(r.Config.WriteBlockBytes())
	wTotal := wBlock * float64(r.Write.Len())
	wr, err := r.Write.Rates(wBlock, wTotal)
	if err != nil {
		return nil, fmt.Errorf("write phase: %w", err)
	}

	rBlock := float64(r.Config.ReadBlockBytes)
	var rr stats.Rates
	if r.Read.Len() > 0 {
		if rr, err = r.Read.Rates(rBlock, float64(r.ReadBytes)); err != nil {
			return nil, fmt.Errorf("read phase: %w", err)
		}
	}

	s := report.NewSummary()
	s.Set("Test file full path", r.Path)
	s.Set("Test file size", units.Bytes(wTotal, "B"))
	s.Set("Write time", units.Round(r.Write.Total().Seconds(), roundPrecision)+" s")
	s.Set("Write speed (avg)", units.Bytes(wr.Avg, "B/s"))
	s.Set("Write speed (max)", units.Bytes(wr.Max, "B/s"))
	s.Set("Write speed (min)", units.Bytes(wr.Min, "B/s"))
	s.Set("Write blocks", r.Write.Len())
	s.Set("Write block size", units.Bytes(wBlock, "B"))
	s.Set("Read size", units.Bytes(float64(r.ReadBytes), "B"))
	s.Set("Read blocks", r.Read.Len())
	s.Set("Read time", units.Round(r.Read.Total().Seconds(), roundPrecision)+" s")
	s.Set("Read speed (avg)", units.Bytes(rr.Avg, "B/s"))
	s.Set("Read speed (max)", units.Bytes(rr.Max, "B/s"))
	s.Set("Read speed (min)", units.Bytes(rr.Min, "B/s"))
	s.Set("Read block size", units.Bytes(rBlock, "B"))
	return s, nil
}

// WriteText prints s in the multi-line console layout.
func WriteText(w io.Writer, s *report.Summary) error {
	_, err := fmt.Fprintf(w,
		"Full path of file: %s\n\n"+
			"Written %s in %v blocks of %s took %s\n"+
			"Write speed is %s\n\tmax: %s, min: %s\n\n"+
			"Read %s spread in %v blocks of %s took %s\n"+
			"Read speed is %s\n\tmax: %s, min: %s\n\n",
		s.String("Test file full path"),
		s.String("Test file size"), s.String("Write blocks"), s.String("Write block size"), s.String("Write time"),
		s.String("Write speed (avg)"), s.String("Write speed (max)"), s.String("Write speed (min)"),
		s.String("Read size"), s.String("Read blocks"), s.String("Read block size"), s.String("Read time"),
		s.String("Read speed (avg)"), s.String("Read speed (max)"), s.String("Read speed (min)"),
	)
	return err
}
