package ingester

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/repository/clickhouse"
	"go.uber.org/zap"
)

type progressReporter struct {
	repository ClickhouseRepository
	metrics    Metrics
	coin       model.Coin
	network    model.Network
	logger     *zap.Logger
}

// Report logs and publishes the contiguous stored height. Failures are logged only.
func (r *progressReporter) Report(ctx context.Context) {
	height, err := r.repository.MaxContiguousBlockHeight(ctx, r.coin, r.network)
	switch {
	case errors.Is(err, clickhouse.ErrNoBlocks):
		r.logger.Debug("no contiguous blocks stored yet")
		return
	case err != nil:
		r.logger.Warn("contiguous height lookup failed", zap.Error(err))
		return
	}

	r.metrics.SetContiguousHeight(height)
	r.logger.Info("contiguous height", zap.Uint64("height", height))
}
