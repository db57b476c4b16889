package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
)

const insertTransactionsQuery = `
INSERT INTO utxo_transactions (
	coin,
	network,
	txid,
	block_height,
	tree,
	block_index,
	timestamp,
	size,
	version,
	lock_time,
	expiry,
	input_count,
	output_count,
	is_coinbase
) VALUES`

// InsertTransactions stores transaction rows in ClickHouse.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", firstCoin(txs), firstNetwork(txs), err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	if err = sendBatch(ctx, r.conn, insertTransactionsQuery, txs, transactionRow); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	r.metrics.ObserveRows("insert_transactions", txs[0].Coin, txs[0].Network, len(txs))
	return nil
}

func transactionRow(tx model.Transaction) []any {
	return []any{
		string(tx.Coin),
		string(tx.Network),
		tx.TxID,
		tx.BlockHeight,
		int8(tx.Tree),
		tx.BlockIndex,
		tx.Timestamp,
		tx.Size,
		tx.Version,
		tx.LockTime,
		tx.Expiry,
		tx.InputCount,
		tx.OutputCount,
		tx.IsCoinbase,
	}
}
