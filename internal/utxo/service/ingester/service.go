// Package ingester runs the block ingestion loop: pick missing heights, fetch and decode the
// blocks concurrently and batch them into storage.
package ingester

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/blockinsight7000-decred/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
	"go.uber.org/zap"
)

// Service orchestrates block ingestion for one coin and network.
type Service struct {
	logger            *zap.Logger
	metrics           Metrics
	sleep             func(context.Context, time.Duration) error
	sleepDuration     time.Duration
	longSleepDuration time.Duration
	backoff           backoff.BackOff
	heightFetcher     HeightFetcher
	blockProcessor    BlockProcessor
	blockWriter       BlockWriter
	progress          ProgressReporter
}

// NewService builds a Service with the given dependencies.
func NewService(
	repo ClickhouseRepository,
	source Source,
	metrics Metrics,
	coin model.Coin,
	network model.Network,
	cfg Config,
	logger *zap.Logger,
) (*Service, error) {
	if repo == nil {
		return nil, errors.New("ingester repository is required")
	}
	if source == nil {
		return nil, errors.New("ingester source is required")
	}
	if metrics == nil {
		return nil, errors.New("ingester metrics is required")
	}

	logger = logger.With(
		zap.String("coin", string(coin)),
		zap.String("network", string(network)),
	)
	cfg = cfg.withDefaults()
	bw := newBlockWriter(repo, metrics, cfg, logger.Named("blockWriter"))

	return &Service{
		logger:            logger,
		metrics:           metrics,
		sleep:             clock.SleepWithContext,
		sleepDuration:     sleepDuration,
		longSleepDuration: longSleepDuration,
		backoff:           clock.NewBackoff(sleepDuration, maxBackoffDuration),
		heightFetcher: &heightFetcher{
			source:     source,
			repository: repo,
			coin:       coin,
			network:    network,
			limit:      cfg.HeightLimit,
		},
		blockWriter: bw,
		blockProcessor: &blockProcessor{
			workerCount: cfg.WorkerCount,
			source:      source,
			blockWriter: bw,
			metrics:     metrics,
			logger:      logger.Named("blockProcessor"),
		},
		progress: &progressReporter{
			repository: repo,
			metrics:    metrics,
			coin:       coin,
			network:    network,
			logger:     logger.Named("progress"),
		},
	}, nil
}

// Run starts the ingestion loop until the context is canceled. Blocks accepted by the writer
// are flushed before Run returns.
func (s *Service) Run(ctx context.Context) error {
	s.blockWriter.Start(ctx)
	defer s.blockWriter.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			delay := s.backoff.NextBackOff()
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", delay))
			if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		s.backoff.Reset()
	}
}

func (s *Service) run(ctx context.Context) (err error) {
	started := time.Now()
	heights, err := s.heightFetcher.Fetch(ctx)
	s.metrics.ObserveFetchMissing(err, started)
	if err != nil {
		s.logger.Error("fetch missing heights failed", zap.Error(err))
		return err
	}

	if len(heights) == 0 {
		s.progress.Report(ctx)
		s.logger.Debug("no missing block heights; sleeping", zap.Duration("sleep", s.longSleepDuration))
		return s.sleep(ctx, s.longSleepDuration)
	}

	fetched := len(heights)
	heights = s.blockWriter.SkipQueued(heights)
	if len(heights) == 0 {
		s.logger.Debug("missing heights are queued for writing; sleeping", zap.Int("heights", fetched))
		return s.sleep(ctx, s.sleepDuration)
	}

	s.logger.Info("processing batch", zap.Int("heights", len(heights)), zap.Int("queued", fetched-len(heights)))
	started = time.Now()
	err = s.blockProcessor.Process(ctx, heights)
	s.metrics.ObserveProcessBatch(err, len(heights), started)
	if err != nil {
		s.logger.Error("process batch failed", zap.Int("heights", len(heights)), zap.Error(err))
		return err
	}

	s.progress.Report(ctx)
	return s.sleep(ctx, s.sleepDuration)
}
