package ingester

import (
	"context"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-decred/pkg/batcher"
	"go.uber.org/zap"
)

type blockWriter struct {
	repo         ClickhouseRepository
	logger       *zap.Logger
	blockBatcher *batcher.Batcher[model.InsertBlock]

	mu     sync.Mutex
	queued map[uint64]struct{}
}

func newBlockWriter(repo ClickhouseRepository, metrics Metrics, cfg Config, logger *zap.Logger) *blockWriter {
	w := &blockWriter{
		repo:   repo,
		logger: logger,
		queued: make(map[uint64]struct{}),
	}
	w.blockBatcher = batcher.New[model.InsertBlock](
		logger.Named("blockBatcher"),
		w.flush,
		batcher.Config{
			FlushSize:     cfg.BatchSize,
			FlushInterval: cfg.FlushInterval,
			RPS:           cfg.WriteRPS,
			OnError: func(_ error, items int) {
				metrics.ObserveDroppedBlocks(items)
			},
		},
	)
	return w
}

func (w *blockWriter) Start(ctx context.Context) {
	w.blockBatcher.Start(ctx)
}

func (w *blockWriter) Stop() {
	w.blockBatcher.Stop()
	stats := w.blockBatcher.Stats()
	w.logger.Info("block writer stopped",
		zap.Uint64("flushed", stats.Flushed),
		zap.Uint64("dropped", stats.Dropped),
		zap.Uint64("batches", stats.Batches),
		zap.Uint64("failed", stats.Failed),
	)
}

func (w *blockWriter) WriteBlock(ctx context.Context, b model.InsertBlock) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	height := b.Block.Height
	w.mu.Lock()
	w.queued[height] = struct{}{}
	w.mu.Unlock()

	if err := w.blockBatcher.Add(ctx, b); err != nil {
		w.release(height)
		return err
	}
	return nil
}

// SkipQueued returns the heights that are not waiting in the batcher.
func (w *blockWriter) SkipQueued(heights []uint64) []uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]uint64, 0, len(heights))
	for _, h := range heights {
		if _, ok := w.queued[h]; !ok {
			out = append(out, h)
		}
	}
	return out
}

func (w *blockWriter) release(heights ...uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, h := range heights {
		delete(w.queued, h)
	}
}

// flush writes child rows before the block rows. A block row marks its height as stored, so
// a failed flush leaves the heights missing and they are fetched again.
func (w *blockWriter) flush(ctx context.Context, insertBlocks []model.InsertBlock) error {
	heights := make([]uint64, 0, len(insertBlocks))
	for _, block := range insertBlocks {
		heights = append(heights, block.Block.Height)
	}
	defer w.release(heights...)

	blocks := make([]model.Block, 0, len(insertBlocks))
	txs := make([]model.Transaction, 0, len(insertBlocks))
	outputs := make([]model.TransactionOutput, 0, len(insertBlocks))
	inputs := make([]model.TransactionInput, 0, len(insertBlocks))

	for _, block := range insertBlocks {
		blocks = append(blocks, block.Block)

		txs = append(txs, block.Txs...)
		if len(txs) >= transactionFlushThreshold {
			if err := w.repo.InsertTransactions(ctx, txs); err != nil {
				return err
			}
			w.logger.Debug("InsertTransactions", zap.Int("count", len(txs)))
			txs = txs[:0]
		}

		outputs = append(outputs, block.Outputs...)
		if len(outputs) >= outputFlushThreshold {
			if err := w.repo.InsertTransactionOutputs(ctx, outputs); err != nil {
				return err
			}
			w.logger.Debug("InsertTransactionOutputs", zap.Int("count", len(outputs)))
			outputs = outputs[:0]
		}

		inputs = append(inputs, block.Inputs...)
		if len(inputs) >= inputFlushThreshold {
			if err := w.repo.InsertTransactionInputs(ctx, inputs); err != nil {
				return err
			}
			w.logger.Debug("InsertTransactionInputs", zap.Int("count", len(inputs)))
			inputs = inputs[:0]
		}
	}

	if err := w.repo.InsertTransactions(ctx, txs); err != nil {
		return err
	}
	if err := w.repo.InsertTransactionOutputs(ctx, outputs); err != nil {
		return err
	}
	if err := w.repo.InsertTransactionInputs(ctx, inputs); err != nil {
		return err
	}

	return w.repo.InsertBlocks(ctx, blocks)
}
