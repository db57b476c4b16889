// Package decred implements the Decred chain source: node access, wire decoding and
// conversion of decoded blocks into storage rows.
package decred

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-decred/pkg/dcrwire"
	"github.com/goodnatureofminers/blockinsight7000-decred/pkg/safe"
)

var (
	// ErrMissingPrefix is returned for block transactions decoded without a prefix.
	ErrMissingPrefix = errors.New("transaction has no prefix")
	// ErrWitnessMismatch is returned when a transaction carries a different number of
	// witnesses than inputs.
	ErrWitnessMismatch = errors.New("witness count does not match input count")
)

type converter struct {
	decoder ScriptDecoder
	network model.Network
}

// NewConverter constructs a converter that turns decoded blocks into domain rows for the network.
func NewConverter(decoder ScriptDecoder, network model.Network) BlockConverter {
	return &converter{decoder: decoder, network: network}
}

func (c *converter) Convert(block *dcrwire.Block) (*chain.Block, error) {
	h := &block.Header
	height := uint64(h.Height)

	size, err := safe.Uint32(block.Size())
	if err != nil {
		return nil, fmt.Errorf("block %d size overflow: %w", height, err)
	}
	txCount, err := safe.Uint32(len(block.Transactions))
	if err != nil {
		return nil, fmt.Errorf("block %d tx count overflow: %w", height, err)
	}
	stxCount, err := safe.Uint32(len(block.STransactions))
	if err != nil {
		return nil, fmt.Errorf("block %d stake tx count overflow: %w", height, err)
	}

	out := &chain.Block{
		Block: model.Block{
			Coin:         model.DCR,
			Network:      c.network,
			Height:       height,
			Hash:         h.BlockHash().String(),
			PrevHash:     h.PrevBlock.String(),
			Timestamp:    h.Timestamp,
			Version:      h.Version,
			MerkleRoot:   h.MerkleRoot.String(),
			StakeRoot:    h.StakeRoot.String(),
			VoteBits:     h.VoteBits,
			Voters:       h.Voters,
			FreshStake:   h.FreshStake,
			Revocations:  h.Revocations,
			PoolSize:     h.PoolSize,
			Bits:         h.Bits,
			SBits:        h.SBits,
			Nonce:        h.Nonce,
			StakeVersion: h.StakeVersion,
			Size:         size,
			TXCount:      txCount,
			STXCount:     stxCount,
			Status:       model.BlockProcessed,
		},
		Txs: make([]model.Transaction, 0, len(block.Transactions)+len(block.STransactions)),
	}

	trees := []struct {
		tree model.Tree
		txs  []*dcrwire.Transaction
	}{
		{tree: model.TreeRegular, txs: block.Transactions},
		{tree: model.TreeStake, txs: block.STransactions},
	}
	for _, t := range trees {
		for idx, tx := range t.txs {
			if err := c.appendTransaction(out, t.tree, idx, tx); err != nil {
				return nil, fmt.Errorf("block %d %s tree tx %d: %w", height, t.tree, idx, err)
			}
		}
	}
	return out, nil
}

func (c *converter) appendTransaction(out *chain.Block, tree model.Tree, idx int, tx *dcrwire.Transaction) error {
	txHash, ok := tx.TxHash()
	if !ok {
		return ErrMissingPrefix
	}
	txid := txHash.String()

	inputs, outputs := tx.Inputs(), tx.Outputs()
	if tx.HasWitness() && len(tx.Witnesses) != len(inputs) {
		return fmt.Errorf("tx %s: %w: %d witnesses, %d inputs", txid, ErrWitnessMismatch, len(tx.Witnesses), len(inputs))
	}

	blockIndex, err := safe.Uint32(idx)
	if err != nil {
		return fmt.Errorf("tx %s index overflow: %w", txid, err)
	}
	size, err := safe.Uint32(tx.Size())
	if err != nil {
		return fmt.Errorf("tx %s size overflow: %w", txid, err)
	}
	inputCount, err := safe.Uint32(len(inputs))
	if err != nil {
		return fmt.Errorf("tx %s vin count overflow: %w", txid, err)
	}
	outputCount, err := safe.Uint32(len(outputs))
	if err != nil {
		return fmt.Errorf("tx %s vout count overflow: %w", txid, err)
	}
	lockTime, _ := tx.LockTime()
	expiry, _ := tx.Expiry()

	out.Txs = append(out.Txs, model.Transaction{
		Coin:        model.DCR,
		Network:     c.network,
		TxID:        txid,
		BlockHeight: out.Block.Height,
		Tree:        tree,
		BlockIndex:  blockIndex,
		Timestamp:   out.Block.Timestamp,
		Size:        size,
		Version:     tx.Version,
		LockTime:    lockTime,
		Expiry:      expiry,
		InputCount:  inputCount,
		OutputCount: outputCount,
		IsCoinbase:  tx.IsCoinbase(),
	})

	for i, in := range inputs {
		row := model.TransactionInput{
			Coin:        model.DCR,
			Network:     c.network,
			BlockHeight: out.Block.Height,
			TxID:        txid,
			Index:       uint32(i),
			PrevVout:    in.PrevOut.Index,
			PrevTree:    model.Tree(in.PrevOut.Tree),
			Sequence:    in.Sequence,
			IsCoinbase:  in.IsCoinbase(),
		}
		if !row.IsCoinbase {
			row.PrevTxID = in.PrevOut.Hash.String()
		}
		if tx.HasWitness() {
			w := tx.Witnesses[i]
			row.Value, _ = w.Value()
			row.PrevHeight, _ = w.Height()
			row.PrevIndex, _ = w.Index()
			row.ScriptSigHex = hex.EncodeToString(w.Script())
			row.ScriptSigAsm = c.decoder.Disasm(w.Script())
		}
		out.Inputs = append(out.Inputs, row)
	}

	for i, o := range outputs {
		if o.Value < 0 {
			return fmt.Errorf("tx %s output %d negative value: %d", txid, i, o.Value)
		}
		script := c.decoder.DecodeOutput(o.Version, o.PkScript)
		out.Outputs = append(out.Outputs, model.TransactionOutput{
			Coin:          model.DCR,
			Network:       c.network,
			BlockHeight:   out.Block.Height,
			TxID:          txid,
			Index:         uint32(i),
			Value:         o.Value,
			ScriptVersion: o.Version,
			ScriptType:    script.Type,
			ScriptHex:     script.Hex,
			ScriptAsm:     script.Asm,
			Addresses:     script.Addresses,
		})
	}
	return nil
}
