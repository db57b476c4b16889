package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
)

const insertBlocksQuery = `
INSERT INTO utxo_blocks (
	coin,
	network,
	height,
	hash,
	prev_hash,
	timestamp,
	version,
	merkleroot,
	stakeroot,
	vote_bits,
	voters,
	fresh_stake,
	revocations,
	pool_size,
	bits,
	sbits,
	nonce,
	stake_version,
	size,
	tx_count,
	stx_count,
	status
) VALUES`

// InsertBlocks stores block rows in ClickHouse.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", firstCoin(blocks), firstNetwork(blocks), err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	if err = sendBatch(ctx, r.conn, insertBlocksQuery, blocks, blockRow); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	r.metrics.ObserveRows("insert_blocks", blocks[0].Coin, blocks[0].Network, len(blocks))
	return nil
}

func blockRow(b model.Block) []any {
	return []any{
		string(b.Coin),
		string(b.Network),
		b.Height,
		b.Hash,
		b.PrevHash,
		b.Timestamp,
		b.Version,
		b.MerkleRoot,
		b.StakeRoot,
		b.VoteBits,
		b.Voters,
		b.FreshStake,
		b.Revocations,
		b.PoolSize,
		b.Bits,
		b.SBits,
		b.Nonce,
		b.StakeVersion,
		b.Size,
		b.TXCount,
		b.STXCount,
		string(b.Status),
	}
}
