package dlog

// Wrap a console writer to buffer writes, yet flush in a timely,
// deterministic fashion, either buffering up to n bytes, or for up to t
// milliseconds, whichever comes first.

import (
	"bufio"
	"io"
	"sync"
	"time"
)

type Console struct {
	mu               sync.Mutex
	wr               io.Writer
	bufferSize       int
	maxFlushInterval time.Duration
	baseWr           io.Writer
	done             chan struct{}
}

// NewConsole wraps baseWr.  With a zero bufferSize writes go straight
// through.  With a zero maxFlushInterval a non-empty buffer is only flushed
// when full or on Flush.
func NewConsole(
	baseWr io.Writer,
	bufferSize int,
	maxFlushInterval time.Duration) *Console {

	return &Console{
		baseWr:           baseWr,
		bufferSize:       bufferSize,
		maxFlushInterval: maxFlushInterval,
		done:             make(chan struct{}),
	}
}

func (cb *Console) Flush() error {
	type flusher interface {
		Flush() error
	}
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if fwr, ok := cb.wr.(flusher); ok {
		return fwr.Flush()
	}
	return nil
}

func (cb *Console) Sync() error {
	type syncer interface {
		Sync() error
	}
	if err := cb.Flush(); err != nil {
		return err
	}
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if swr, ok := cb.baseWr.(syncer); ok {
		return swr.Sync()
	}
	return nil
}

// Close stops the flush daemon and flushes whatever is buffered.  The
// console must not be written to afterwards.
func (cb *Console) Close() error {
	cb.mu.Lock()
	select {
	case <-cb.done:
	default:
		close(cb.done)
	}
	cb.mu.Unlock()
	return cb.Flush()
}

func (cb *Console) flushDaemon() {
	// Try to guarantee that we flush at least every maxFlushInterval.
	// This can result in a single extra queued flush if the
	// underlying writer takes longer than maxFlushInterval.
	ticker := time.NewTicker(cb.maxFlushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_ = cb.Flush() // Ignore error.
		case <-cb.done:
			return
		}
	}
}

func (cb *Console) Write(b []byte) (n int, err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.wr == nil {
		if cb.bufferSize <= 0 {
			return cb.baseWr.Write(b)
		}
		cb.wr = bufio.NewWriterSize(cb.baseWr, cb.bufferSize)
		if cb.maxFlushInterval > 0 {
			go cb.flushDaemon()
		}
	}
	return cb.wr.Write(b)
}
