package disk

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	mrand "math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"speedcheck/internal/stats"
)

// Benchmark owns the test file for the duration of Run.
type Benchmark struct {
	cfg      Config
	path     string
	progress stats.Progress
	offsets  func(count, blockSize int) []int64
}

func New(cfg Config) (*Benchmark, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	path, err := filepath.Abs(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", cfg.File, err)
	}
	p := cfg.Progress
	if p == nil {
		p = stats.Discard
	}
	return &Benchmark{cfg: cfg, path: path, progress: p, offsets: ReadOffsets}, nil
}

func (b *Benchmark) Path() string { return b.path }

// Run writes then reads the test file. The file is removed on every return
// path, including errors and cancellation.
func (b *Benchmark) Run(ctx context.Context) (res *Result, err error) {
	defer func() {
		if rerr := b.Remove(); rerr != nil {
			err = errors.Join(err, rerr)
			res = nil
		}
	}()

	w, err := b.WritePhase(ctx)
	if err != nil {
		return nil, err
	}
	r, n, err := b.ReadPhase(ctx)
	if err != nil {
		return nil, err
	}
	return &Result{
		Path:      b.path,
		Config:    b.cfg,
		Write:     w,
		Read:      r,
		ReadBytes: n,
	}, nil
}

// WritePhase appends WriteBlocks random blocks, fsyncing after each. One
// sample covers one write plus its sync.
func (b *Benchmark) WritePhase(ctx context.Context) (*stats.Samples, error) {
	f, err := os.OpenFile(b.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("open for write: %w", err)
	}
	defer f.Close()

	count := b.cfg.WriteBlocks()
	buf := make([]byte, b.cfg.WriteBlockBytes())
	samples := stats.NewSamples(count)

	b.progress.Start("Writing", count)
	defer b.progress.Finish()

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rand.Read(buf)

		start := time.Now()
		if _, err := f.Write(buf); err != nil {
			return nil, fmt.Errorf("write block %d: %w", i, err)
		}
		if err := f.Sync(); err != nil {
			return nil, fmt.Errorf("sync block %d: %w", i, err)
		}
		took := time.Since(start)

		samples.Add(took)
		b.progress.Step(i+1, took)
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close after write: %w", err)
	}
	return samples, nil
}

// ReadPhase reads one block at each shuffled offset. A zero-byte read means
// the file ended early; the phase stops there without error and without
// recording that block.
func (b *Benchmark) ReadPhase(ctx context.Context) (*stats.Samples, int64, error) {
	f, err := os.Open(b.path)
	if err != nil {
		return nil, 0, fmt.Errorf("open for read: %w", err)
	}
	defer f.Close()

	if b.cfg.DropCache {
		if err := dropCache(f); err != nil {
			return nil, 0, fmt.Errorf("drop page cache: %w", err)
		}
	}

	offsets := b.offsets(b.cfg.ReadBlocks(), b.cfg.ReadBlockBytes)
	buf := make([]byte, b.cfg.ReadBlockBytes)
	samples := stats.NewSamples(len(offsets))
	var total int64

	b.progress.Start("Reading", len(offsets))
	defer b.progress.Finish()

	for i, off := range offsets {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		start := time.Now()
		if _, err := f.Seek(off, io.SeekStart); err != nil {
			return nil, 0, fmt.Errorf("seek to %d: %w", off, err)
		}
		n, err := f.Read(buf)
		took := time.Since(start)

		if n == 0 {
			if err == nil || errors.Is(err, io.EOF) {
				break
			}
			return nil, 0, fmt.Errorf("read at %d: %w", off, err)
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, 0, fmt.Errorf("read at %d: %w", off, err)
		}

		total += int64(n)
		samples.Add(took)
		b.progress.Step(i+1, took)
	}
	return samples, total, nil
}

// Remove deletes the test file. A file that is already gone is not an error.
func (b *Benchmark) Remove() error {
	err := os.Remove(b.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", b.path, err)
	}
	return nil
}

// ReadOffsets returns every block-aligned offset below count*blockSize in a
// uniformly random order.
func ReadOffsets(count, blockSize int) []int64 {
	offsets := make([]int64, count)
	for i := range offsets {
		offsets[i] = int64(i) * int64(blockSize)
	}
	mrand.Shuffle(len(offsets), func(i, j int) {
		offsets[i], offsets[j] = offsets[j], offsets[i]
	})
	return offsets
}
