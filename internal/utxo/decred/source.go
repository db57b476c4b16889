package decred

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-decred/pkg/dcrwire"
	"github.com/goodnatureofminers/blockinsight7000-decred/pkg/safe"
)

var (
	// ErrTrailingData is returned when the node returns bytes past the end of the block.
	ErrTrailingData = errors.New("trailing data after block")
	// ErrBlockMismatch is returned when the decoded block is not the one requested.
	ErrBlockMismatch = errors.New("decoded block does not match request")
)

// Source implements chain.Source for Decred by decoding raw blocks from dcrd.
type Source struct {
	rpc       NodeClient
	converter BlockConverter
	metrics   DecodeMetrics
	network   model.Network
}

// NewSource creates a Source for Decred.
func NewSource(rpc NodeClient, converter BlockConverter, metrics DecodeMetrics, network model.Network) *Source {
	return &Source{
		rpc:       rpc,
		converter: converter,
		metrics:   metrics,
		network:   network,
	}
}

// LatestHeight returns the latest block height from the node.
func (s *Source) LatestHeight(_ context.Context) (uint64, error) {
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// FetchBlock retrieves and decodes the block at the given height.
func (s *Source) FetchBlock(ctx context.Context, height uint64) (*chain.Block, error) {
	rpcHeight, err := safe.Int64(height)
	if err != nil {
		return nil, fmt.Errorf("block height %d exceeds rpc limit: %w", height, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := s.rpc.GetBlockHash(rpcHeight)
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := s.rpc.GetRawBlock(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}

	block, end, err := dcrwire.DecodeBlock(raw, 0)
	if err == nil && end != len(raw) {
		err = fmt.Errorf("%w: %d of %d bytes used", ErrTrailingData, end, len(raw))
	}
	s.metrics.ObserveBlock(err)
	if err != nil {
		return nil, fmt.Errorf("decode block %s: %w", hash, err)
	}

	if got := uint64(block.Header.Height); got != height {
		return nil, fmt.Errorf("%w: block %s has height %d, want %d", ErrBlockMismatch, hash, got, height)
	}
	if got := block.Header.BlockHash(); got != *hash {
		return nil, fmt.Errorf("%w: header hashes to %s, want %s", ErrBlockMismatch, got, hash)
	}

	for _, tx := range block.Transactions {
		s.metrics.ObserveTransaction(model.TreeRegular, tx.SerType)
	}
	for _, tx := range block.STransactions {
		s.metrics.ObserveTransaction(model.TreeStake, tx.SerType)
	}

	return s.converter.Convert(block)
}
