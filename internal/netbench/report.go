package netbench

import (
	"fmt"
	"io"

	"speedcheck/internal/report"
	"speedcheck/internal/units"
)

const roundPrecision = 5

// Summary derives the reported metrics. Rates are in bits per second.
func (r *ClientResult) Summary() (*report.Summary, error) {
	block := float64(r.Config.BlockSize)
	rates, err := r.Samples.Rates(block*8, float64(r.BytesSent)*8)
	if err != nil {
		return nil, fmt.Errorf("transfer phase: %w", err)
	}

	s := report.NewSummary()
	s.Set("Server address", r.Addr)
	s.Set("Transfer size", units.Bytes(float64(r.BytesSent), "B"))
	s.Set("Transfer time", units.Round(r.Samples.Total().Seconds(), roundPrecision)+" s")
	s.Set("Connect latency", units.Seconds(r.ConnectLatency.Seconds(), "s"))
	s.Set("Disconnect latency", units.Seconds(r.DisconnectLatency.Seconds(), "s"))
	s.Set("Average latency", units.Seconds((r.ConnectLatency+r.DisconnectLatency).Seconds()/2, "s"))
	s.Set("Transfer speed (avg)", units.Bits(rates.Avg, "bps"))
	s.Set("Transfer speed (max)", units.Bits(rates.Max, "bps"))
	s.Set("Transfer speed (min)", units.Bits(rates.Min, "bps"))
	s.Set("Transfer block size", units.Bytes(block, "B"))
	s.Set("Amount of blocks", r.Samples.Len())
	return s, nil
}

// WriteText prints s in the multi-line console layout.
func WriteText(w io.Writer, s *report.Summary) error {
	_, err := fmt.Fprintf(w,
		"Server address: %s\n\n"+
			"Transfered %s across %s blocks of %s took %s\n"+
			"Transfer speed is %s\n\tmax: %s, min: %s\n"+
			"Average latency: %s\nConnect latency: %s\nDisconnect latency: %s\n\n",
		s.String("Server address"),
		s.String("Transfer size"), s.String("Amount of blocks"), s.String("Transfer block size"), s.String("Transfer time"),
		s.String("Transfer speed (avg)"), s.String("Transfer speed (max)"), s.String("Transfer speed (min)"),
		s.String("Average latency"), s.String("Connect latency"), s.String("Disconnect latency"),
	)
	return err
}
