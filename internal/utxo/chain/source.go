// Package chain defines interfaces and structs shared between UTXO ingestion components.
package chain

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
)

// Source provides decoded block data for ingestion.
type Source interface {
	LatestHeight(ctx context.Context) (uint64, error)
	FetchBlock(ctx context.Context, height uint64) (*Block, error)
}

// Block wraps a block and the rows derived from both of its transaction trees.
type Block struct {
	Block   model.Block
	Txs     []model.Transaction
	Outputs []model.TransactionOutput
	Inputs  []model.TransactionInput
}

// InsertBlock converts the bundle into the shape the writer persists.
func (b *Block) InsertBlock() model.InsertBlock {
	return model.InsertBlock{
		Block:   b.Block,
		Txs:     b.Txs,
		Outputs: b.Outputs,
		Inputs:  b.Inputs,
	}
}
