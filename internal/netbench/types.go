package netbench

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"speedcheck/internal/stats"
)

const (
	// ServerBufferSize is the receive chunk used by the drain loop.
	ServerBufferSize = 4096
	DefaultBlockSize = 1024 * 1024
	DefaultSizeMB    = 256
	DefaultBindAddr  = "0.0.0.0"
)

var (
	ErrInvalidConfig = errors.New("invalid network benchmark config")
	ErrNoBlocks      = errors.New("configuration yields zero blocks")
)

type ClientConfig struct {
	Address   string
	Port      int
	SizeMB    int // total MB transferred
	BlockSize int // bytes per send call

	// FreshBuffers regenerates the random payload for every block instead of
	// reusing a single buffer. Buffer generation is never timed.
	FreshBuffers bool

	Progress stats.Progress
}

func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		SizeMB:    DefaultSizeMB,
		BlockSize: DefaultBlockSize,
	}
}

// Blocks is floor(SizeMB*1MiB / BlockSize).
func (c ClientConfig) Blocks() int { return c.SizeMB * 1024 * 1024 / c.BlockSize }

func (c ClientConfig) HostPort() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

func (c ClientConfig) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("%w: empty server address", ErrInvalidConfig)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidConfig, c.Port)
	}
	if c.SizeMB <= 0 || c.BlockSize <= 0 {
		return fmt.Errorf("%w: size %d MB, block %d B", ErrInvalidConfig, c.SizeMB, c.BlockSize)
	}
	if c.Blocks() == 0 {
		return fmt.Errorf("%w: %d MB in %d B blocks", ErrNoBlocks, c.SizeMB, c.BlockSize)
	}
	return nil
}

// ClientResult is what one transfer measured.
type ClientResult struct {
	Addr              string
	Config            ClientConfig
	Samples           *stats.Samples
	BytesSent         int64
	ConnectLatency    time.Duration
	DisconnectLatency time.Duration
}

type ServerConfig struct {
	Address string
	Port    int

	// OnSession is called after each connection is closed.
	OnSession func(Session)
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{Address: DefaultBindAddr}
}

func (c ServerConfig) HostPort() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

func (c ServerConfig) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidConfig, c.Port)
	}
	return nil
}

// Session describes one drained client connection.
type Session struct {
	ID      string
	Remote  net.Addr
	Bytes   int64
	Elapsed time.Duration
	Err     error // non-nil if the connection ended with something other than EOF
}
