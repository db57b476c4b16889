package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterFetchMissingTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "fetch_missing_total",
		Help:      "Count of attempts to fetch missing block heights.",
	}, []string{"coin", "network", "status"})

	ingesterFetchMissingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "fetch_missing_duration_seconds",
		Help:      "Duration of fetching missing block heights.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	ingesterProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "process_batch_total",
		Help:      "Count of processed batches.",
	}, []string{"coin", "network", "status"})

	ingesterProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of processing a batch of heights.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	ingesterProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "process_batch_size",
		Help:      "Number of heights processed per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"coin", "network"})

	ingesterProcessHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "process_height_duration_seconds",
		Help:      "Duration of processing a single height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	ingesterContiguousHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "contiguous_height",
		Help:      "Highest height below which every block is stored.",
	}, []string{"coin", "network"})

	ingesterDroppedBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ingester",
		Name:      "dropped_blocks_total",
		Help:      "Count of blocks whose write batch failed.",
	}, []string{"coin", "network"})
)

// Ingester tracks metrics of the block ingestion loop.
type Ingester struct {
	coin    string
	network string
}

// NewIngester constructs an Ingester metrics collector.
func NewIngester(coin model.Coin, network model.Network) *Ingester {
	return &Ingester{coin: coinLabel(coin), network: networkLabel(network)}
}

func (m Ingester) ObserveFetchMissing(err error, started time.Time) {
	status := statusLabel(err)
	ingesterFetchMissingTotal.WithLabelValues(m.coin, m.network, status).Inc()
	ingesterFetchMissingDuration.WithLabelValues(m.coin, m.network, status).
		Observe(time.Since(started).Seconds())
}

func (m Ingester) ObserveProcessBatch(err error, heights int, started time.Time) {
	status := statusLabel(err)
	ingesterProcessBatchTotal.WithLabelValues(m.coin, m.network, status).Inc()
	ingesterProcessBatchDuration.WithLabelValues(m.coin, m.network, status).
		Observe(time.Since(started).Seconds())
	ingesterProcessBatchSize.WithLabelValues(m.coin, m.network).Observe(float64(heights))
}

func (m Ingester) ObserveProcessHeight(err error, _ uint64, started time.Time) {
	ingesterProcessHeightDuration.WithLabelValues(m.coin, m.network, statusLabel(err)).
		Observe(time.Since(started).Seconds())
}

// SetContiguousHeight publishes the contiguous ingestion progress.
func (m Ingester) SetContiguousHeight(height uint64) {
	ingesterContiguousHeight.WithLabelValues(m.coin, m.network).Set(float64(height))
}

// ObserveDroppedBlocks counts blocks lost to a failed write batch.
func (m Ingester) ObserveDroppedBlocks(n int) {
	ingesterDroppedBlocksTotal.WithLabelValues(m.coin, m.network).Add(float64(n))
}
