// Package metrics holds the Prometheus collectors of the ingestion pipeline.
package metrics

import "github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"

const namespace = "blockinsight7000"

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func coinLabel(coin model.Coin) string {
	if coin == "" {
		return "unknown"
	}
	return string(coin)
}

func networkLabel(network model.Network) string {
	if network == "" {
		return "unknown"
	}
	return string(network)
}
