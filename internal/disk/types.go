package disk

import (
	"errors"
	"fmt"

	"speedcheck/internal/stats"
)

// DefaultFile is created in the working directory when no path is given.
const DefaultFile = ".disk_performance_test.tmp"

var (
	ErrInvalidConfig = errors.New("invalid disk benchmark config")
	ErrNoBlocks      = errors.New("configuration yields zero blocks")
)

type Config struct {
	File           string
	SizeMB         int // total MB written
	WriteBlockKB   int
	ReadBlockBytes int

	// DropCache asks the kernel to evict the file's pages before reading.
	DropCache bool

	Progress stats.Progress
}

func DefaultConfig() Config {
	return Config{
		File:           DefaultFile,
		SizeMB:         256,
		WriteBlockKB:   1024,
		ReadBlockBytes: 512,
	}
}

func (c Config) WriteBlockBytes() int { return c.WriteBlockKB * 1024 }

// WriteBlocks is floor(SizeMB*1024 / WriteBlockKB).
func (c Config) WriteBlocks() int { return c.SizeMB * 1024 / c.WriteBlockKB }

// ReadBlocks is floor(SizeMB*1MiB / ReadBlockBytes).
func (c Config) ReadBlocks() int { return c.SizeMB * 1024 * 1024 / c.ReadBlockBytes }

func (c Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("%w: empty file path", ErrInvalidConfig)
	}
	if c.SizeMB <= 0 || c.WriteBlockKB <= 0 || c.ReadBlockBytes <= 0 {
		return fmt.Errorf("%w: size %d MB, write block %d KB, read block %d B",
			ErrInvalidConfig, c.SizeMB, c.WriteBlockKB, c.ReadBlockBytes)
	}
	if c.WriteBlocks() == 0 {
		return fmt.Errorf("%w: %d MB in %d KB write blocks", ErrNoBlocks, c.SizeMB, c.WriteBlockKB)
	}
	if c.ReadBlocks() == 0 {
		return fmt.Errorf("%w: %d MB in %d B read blocks", ErrNoBlocks, c.SizeMB, c.ReadBlockBytes)
	}
	return nil
}

// Result holds both phases of one run.
type Result struct {
	Path      string // absolute path of the test file
	Config    Config
	Write     *stats.Samples
	Read      *stats.Samples
	ReadBytes int64
}
