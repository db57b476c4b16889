package ingester

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-decred/pkg/workerpool"
	"go.uber.org/zap"
)

type blockProcessor struct {
	workerCount int
	source      Source
	blockWriter BlockWriter
	metrics     Metrics
	logger      *zap.Logger
}

func (p *blockProcessor) Process(ctx context.Context, heights []uint64) error {
	return workerpool.Process(ctx, p.workerCount, heights, p.processHeight, func() {
		p.logger.Warn("aborting batch after first failure", zap.Int("heights", len(heights)))
	})
}

func (p *blockProcessor) processHeight(ctx context.Context, height uint64) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveProcessHeight(err, height, started)
	}()

	block, err := p.source.FetchBlock(ctx, height)
	if err != nil {
		p.logger.Error("fetch block failed", zap.Uint64("height", height), zap.Error(err))
		return fmt.Errorf("fetch block height %d: %w", height, err)
	}

	if err = p.blockWriter.WriteBlock(ctx, block.InsertBlock()); err != nil {
		p.logger.Error("write block failed", zap.Uint64("height", height), zap.Error(err))
		return fmt.Errorf("write block height %d: %w", height, err)
	}
	return nil
}
