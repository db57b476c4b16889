package metrics

import (
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-decred/pkg/dcrwire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decoderBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "decoder",
		Name:      "blocks_total",
		Help:      "Count of raw blocks decoded, by result.",
	}, []string{"coin", "network", "result"})

	decoderTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "decoder",
		Name:      "transactions_total",
		Help:      "Count of decoded transactions, by tree and serialization type.",
	}, []string{"coin", "network", "tree", "ser_type"})
)

// Decoder tracks outcomes of wire decoding.
type Decoder struct {
	coin    string
	network string
}

// NewDecoder constructs a Decoder metrics collector.
func NewDecoder(coin model.Coin, network model.Network) *Decoder {
	return &Decoder{coin: coinLabel(coin), network: networkLabel(network)}
}

// ObserveBlock records the result of decoding one raw block.
func (m Decoder) ObserveBlock(err error) {
	decoderBlocksTotal.WithLabelValues(m.coin, m.network, decodeResult(err)).Inc()
}

// ObserveTransaction records one decoded transaction.
func (m Decoder) ObserveTransaction(tree model.Tree, serType dcrwire.SerType) {
	decoderTransactionsTotal.WithLabelValues(m.coin, m.network, tree.String(), serType.String()).Inc()
}

func decodeResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, dcrwire.ErrUnexpectedEndOfInput):
		return "unexpected_end_of_input"
	case errors.Is(err, dcrwire.ErrInvalidSerializationType):
		return "invalid_serialization_type"
	default:
		return "error"
	}
}
