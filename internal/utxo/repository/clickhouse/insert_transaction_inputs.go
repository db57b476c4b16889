package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
)

const insertTransactionInputsQuery = `
INSERT INTO utxo_transaction_inputs (
	coin,
	network,
	block_height,
	txid,
	input_index,
	prev_txid,
	prev_vout,
	prev_tree,
	sequence,
	is_coinbase,
	value_in,
	prev_height,
	prev_index,
	script_sig_hex,
	script_sig_asm
) VALUES`

// InsertTransactionInputs stores transaction inputs in ClickHouse.
func (r *Repository) InsertTransactionInputs(ctx context.Context, inputs []model.TransactionInput) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction_inputs", firstCoin(inputs), firstNetwork(inputs), err, start)
	}()

	if len(inputs) == 0 {
		return nil
	}

	if err = sendBatch(ctx, r.conn, insertTransactionInputsQuery, inputs, inputRow); err != nil {
		return fmt.Errorf("insert transaction inputs: %w", err)
	}
	r.metrics.ObserveRows("insert_transaction_inputs", inputs[0].Coin, inputs[0].Network, len(inputs))
	return nil
}

func inputRow(in model.TransactionInput) []any {
	return []any{
		string(in.Coin),
		string(in.Network),
		in.BlockHeight,
		in.TxID,
		in.Index,
		in.PrevTxID,
		in.PrevVout,
		int8(in.PrevTree),
		in.Sequence,
		in.IsCoinbase,
		in.Value,
		in.PrevHeight,
		in.PrevIndex,
		in.ScriptSigHex,
		in.ScriptSigAsm,
	}
}
