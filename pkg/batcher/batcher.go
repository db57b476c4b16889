// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once the batcher has been stopped.
var ErrStopped = errors.New("batcher stopped")

// Config controls when buffered items are flushed.
type Config struct {
	// FlushSize is the number of items that triggers an immediate flush.
	FlushSize int
	// FlushInterval bounds how long an item may wait in the buffer.
	FlushInterval time.Duration
	// RPS limits flushes per second.
	RPS int
	// OnError is called with the failed flush error and the number of items dropped.
	OnError func(err error, items int)
}

// Stats reports flush outcomes since the batcher was created.
type Stats struct {
	Flushed uint64
	Dropped uint64
	Batches uint64
	Failed  uint64
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	cfg           Config
	rl            ratelimit.Limiter
	logger        *zap.Logger

	flushed atomic.Uint64
	dropped atomic.Uint64
	batches atomic.Uint64
	failed  atomic.Uint64

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once

	// mu guards stopped. Add sends under the read lock, so once shutdown holds the write lock
	// every accepted item is already in itemsCh.
	mu      sync.RWMutex
	stopped bool
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, cfg Config) *Batcher[T] {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = 1
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	rl := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		rl = ratelimit.New(cfg.RPS)
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, cfg.FlushSize*2),
		cfg:           cfg,
		rl:            rl,
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes queued items and stops the background loop. It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.shutdown()
	b.wg.Wait()
}

// shutdown rejects further items. Senders blocked on a full buffer are released by the closed
// stop channel before the write lock is taken.
func (b *Batcher[T]) shutdown() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.mu.Lock()
	b.stopped = true
	b.mu.Unlock()
}

// Stats returns a snapshot of flush counters.
func (b *Batcher[T]) Stats() Stats {
	return Stats{
		Flushed: b.flushed.Load(),
		Dropped: b.dropped.Load(),
		Batches: b.batches.Load(),
		Failed:  b.failed.Load(),
	}
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.stopped {
		return ErrStopped
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.FlushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		b.batches.Add(1)
		if err := b.flushCallback(ctx, buf); err != nil {
			b.failed.Add(1)
			b.dropped.Add(uint64(len(buf)))
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
			if b.cfg.OnError != nil {
				b.cfg.OnError(err, len(buf))
			}
		} else {
			b.flushed.Add(uint64(len(buf)))
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	// Items accepted before shutdown are still written, so the final flush must outlive ctx.
	drain := func() {
		final := context.WithoutCancel(ctx)
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.cfg.FlushSize {
					flush(final)
				}
			default:
				flush(final)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			b.shutdown()
			drain()
			return

		case <-b.stop:
			b.shutdown()
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
