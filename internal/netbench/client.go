package netbench

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"net"
	"sync"
	"syscall"
	"time"

	"speedcheck/internal/stats"
)

type Client struct {
	cfg      ClientConfig
	progress stats.Progress
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := cfg.Progress
	if p == nil {
		p = stats.Discard
	}
	return &Client{cfg: cfg, progress: p}, nil
}

// Run connects, sends Blocks() blocks timing each send call, half-closes and
// waits for the server to close its side.
func (c *Client) Run(ctx context.Context) (*ClientResult, error) {
	var (
		mu      sync.Mutex
		created time.Time
	)
	dialer := net.Dialer{
		// Control runs once a socket exists, right before connect. Dual-stack
		// fallback can run it concurrently; the first socket wins.
		Control: func(_, _ string, _ syscall.RawConn) error {
			mu.Lock()
			if created.IsZero() {
				created = time.Now()
			}
			mu.Unlock()
			return nil
		},
	}

	addr := c.cfg.HostPort()
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", addr, err)
	}
	mu.Lock()
	connectLatency := time.Since(created)
	mu.Unlock()
	defer conn.Close()

	// Cancellation unblocks an in-flight send or the final wait.
	stop := context.AfterFunc(ctx, func() { conn.SetDeadline(time.Now()) })
	defer stop()

	count := c.cfg.Blocks()
	next := c.bufferSource()
	samples := stats.NewSamples(count)
	var sent int64

	c.progress.Start("Transfering", count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			c.progress.Finish()
			return nil, err
		}
		buf := next()

		start := time.Now()
		n, err := conn.Write(buf)
		took := time.Since(start)
		if err != nil {
			c.progress.Finish()
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("send block %d: %w", i, err)
		}

		sent += int64(n)
		samples.Add(took)
		c.progress.Step(i+1, took)
	}
	c.progress.Finish()

	if err := closeWrite(conn); err != nil {
		return nil, fmt.Errorf("shutdown write: %w", err)
	}
	start := time.Now()
	if _, err := io.Copy(io.Discard, conn); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("wait for server close: %w", err)
	}
	disconnectLatency := time.Since(start)

	return &ClientResult{
		Addr:              addr,
		Config:            c.cfg,
		Samples:           samples,
		BytesSent:         sent,
		ConnectLatency:    connectLatency,
		DisconnectLatency: disconnectLatency,
	}, nil
}

// bufferSource picks the payload strategy once, before the send loop.
func (c *Client) bufferSource() func() []byte {
	buf := make([]byte, c.cfg.BlockSize)
	rand.Read(buf)
	if !c.cfg.FreshBuffers {
		return func() []byte { return buf }
	}
	return func() []byte {
		rand.Read(buf)
		return buf
	}
}

func closeWrite(conn net.Conn) error {
	cw, ok := conn.(interface{ CloseWrite() error })
	if !ok {
		return fmt.Errorf("%T does not support half-close", conn)
	}
	return cw.CloseWrite()
}
