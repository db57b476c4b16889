package ingester

import "time"

const (
	defaultWorkerCount = 20

	randomHeightLimit = 5000

	transactionFlushThreshold = 1000
	outputFlushThreshold      = 10_000
	inputFlushThreshold       = 10_000

	sleepDuration      = 5 * time.Second
	longSleepDuration  = 1 * time.Minute
	maxBackoffDuration = 2 * time.Minute

	blockBatcherCapacity      = 1000
	blockBatcherFlushInterval = 30 * time.Second
	blockBatcherRPS           = 20
)

// Config tunes the ingestion loop. Zero fields fall back to defaults.
type Config struct {
	WorkerCount   int
	HeightLimit   uint64
	BatchSize     int
	FlushInterval time.Duration
	WriteRPS      int
}

func (c Config) withDefaults() Config {
	if c.WorkerCount <= 0 {
		c.WorkerCount = defaultWorkerCount
	}
	if c.HeightLimit == 0 {
		c.HeightLimit = randomHeightLimit
	}
	if c.BatchSize <= 0 {
		c.BatchSize = blockBatcherCapacity
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = blockBatcherFlushInterval
	}
	if c.WriteRPS <= 0 {
		c.WriteRPS = blockBatcherRPS
	}
	return c
}
