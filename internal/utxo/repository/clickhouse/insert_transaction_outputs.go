package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
)

const insertTransactionOutputsQuery = `
INSERT INTO utxo_transaction_outputs (
	coin,
	network,
	block_height,
	txid,
	output_index,
	value,
	script_version,
	script_type,
	script_hex,
	script_asm,
	addresses
) VALUES`

// InsertTransactionOutputs stores transaction outputs in ClickHouse.
func (r *Repository) InsertTransactionOutputs(ctx context.Context, outputs []model.TransactionOutput) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction_outputs", firstCoin(outputs), firstNetwork(outputs), err, start)
	}()

	if len(outputs) == 0 {
		return nil
	}

	if err = sendBatch(ctx, r.conn, insertTransactionOutputsQuery, outputs, outputRow); err != nil {
		return fmt.Errorf("insert transaction outputs: %w", err)
	}
	r.metrics.ObserveRows("insert_transaction_outputs", outputs[0].Coin, outputs[0].Network, len(outputs))
	return nil
}

func outputRow(o model.TransactionOutput) []any {
	addresses := o.Addresses
	if addresses == nil {
		addresses = []string{}
	}
	return []any{
		string(o.Coin),
		string(o.Network),
		o.BlockHeight,
		o.TxID,
		o.Index,
		o.Value,
		o.ScriptVersion,
		o.ScriptType,
		o.ScriptHex,
		o.ScriptAsm,
		addresses,
	}
}
