package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
)

// ErrNoBlocks is returned when no block is stored for the coin and network.
var ErrNoBlocks = errors.New("no blocks stored")

const maxContiguousBlockHeightQuery = `
WITH data AS (
	SELECT
		height,
		row_number() OVER (ORDER BY height) - 1 AS rn
	FROM utxo_blocks
	WHERE coin = ? AND network = ?
	GROUP BY height
)
SELECT count() AS contiguous, max(height) AS max_contiguous_height
FROM data
WHERE rn = height`

// MaxContiguousBlockHeight returns the highest height h such that every block in [0, h] is
// stored. ErrNoBlocks is returned when the genesis block is missing.
func (r *Repository) MaxContiguousBlockHeight(ctx context.Context, coin model.Coin, network model.Network) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_contiguous_block_height", coin, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, maxContiguousBlockHeightQuery, string(coin), string(network))
	if err != nil {
		return 0, fmt.Errorf("query max contiguous block height: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, fmt.Errorf("iterate max contiguous block height: %w", err)
		}
		return 0, ErrNoBlocks
	}

	var contiguous, height uint64
	if err = rows.Scan(&contiguous, &height); err != nil {
		return 0, fmt.Errorf("scan max contiguous block height: %w", err)
	}
	if contiguous == 0 {
		return 0, ErrNoBlocks
	}

	return height, nil
}
