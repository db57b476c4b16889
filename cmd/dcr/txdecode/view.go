package main

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/decred"
	"github.com/goodnatureofminers/blockinsight7000-decred/pkg/dcrwire"
)

type txView struct {
	TxID       string        `json:"txid,omitempty"`
	Version    uint16        `json:"version"`
	SerType    string        `json:"serType"`
	Size       int           `json:"size"`
	EndOffset  int           `json:"endOffset,omitempty"`
	IsCoinbase bool          `json:"isCoinbase"`
	LockTime   *uint32       `json:"lockTime,omitempty"`
	Expiry     *uint32       `json:"expiry,omitempty"`
	Inputs     []inputView   `json:"vin,omitempty"`
	Outputs    []outputView  `json:"vout,omitempty"`
	Witnesses  []witnessView `json:"witnesses,omitempty"`
}

type inputView struct {
	PrevHash  string `json:"prevHash"`
	PrevIndex uint32 `json:"prevIndex"`
	PrevTree  int8   `json:"prevTree"`
	Sequence  uint32 `json:"sequence"`
	Coinbase  bool   `json:"coinbase,omitempty"`
}

type outputView struct {
	Value         int64    `json:"value"`
	Amount        float64  `json:"amount"`
	ScriptVersion uint16   `json:"scriptVersion"`
	ScriptHex     string   `json:"scriptHex"`
	ScriptAsm     string   `json:"scriptAsm"`
	ScriptType    string   `json:"scriptType"`
	Addresses     []string `json:"addresses,omitempty"`
}

type witnessView struct {
	ValueIn     *int64  `json:"valueIn,omitempty"`
	BlockHeight *uint32 `json:"blockHeight,omitempty"`
	BlockIndex  *uint32 `json:"blockIndex,omitempty"`
	ScriptHex   string  `json:"sigScriptHex"`
	ScriptAsm   string  `json:"sigScriptAsm"`
}

type blockView struct {
	Hash          string    `json:"hash"`
	PrevHash      string    `json:"previousBlockHash"`
	Height        uint32    `json:"height"`
	Version       int32     `json:"version"`
	Timestamp     int64     `json:"time"`
	Voters        uint16    `json:"voters"`
	FreshStake    uint8     `json:"freshStake"`
	Revocations   uint8     `json:"revocations"`
	SBits         int64     `json:"sbits"`
	Size          int       `json:"size"`
	Transactions  []*txView `json:"tx"`
	STransactions []*txView `json:"stx"`
}

func newTxView(tx *dcrwire.Transaction, decoder decred.ScriptDecoder) *txView {
	v := &txView{
		Version:    tx.Version,
		SerType:    tx.SerType.String(),
		Size:       tx.Size(),
		IsCoinbase: tx.IsCoinbase(),
	}
	if hash, ok := tx.TxHash(); ok {
		v.TxID = hash.String()
	}
	if lockTime, ok := tx.LockTime(); ok {
		v.LockTime = &lockTime
	}
	if expiry, ok := tx.Expiry(); ok {
		v.Expiry = &expiry
	}

	for _, in := range tx.Inputs() {
		v.Inputs = append(v.Inputs, inputView{
			PrevHash:  in.PrevOut.Hash.String(),
			PrevIndex: in.PrevOut.Index,
			PrevTree:  in.PrevOut.Tree,
			Sequence:  in.Sequence,
			Coinbase:  in.IsCoinbase(),
		})
	}
	for _, out := range tx.Outputs() {
		script := decoder.DecodeOutput(out.Version, out.PkScript)
		v.Outputs = append(v.Outputs, outputView{
			Value:         out.Value,
			Amount:        btcutil.Amount(out.Value).ToBTC(),
			ScriptVersion: out.Version,
			ScriptHex:     script.Hex,
			ScriptAsm:     script.Asm,
			ScriptType:    script.Type,
			Addresses:     script.Addresses,
		})
	}
	for _, w := range tx.Witnesses {
		wv := witnessView{
			ScriptHex: hex.EncodeToString(w.Script()),
			ScriptAsm: decoder.Disasm(w.Script()),
		}
		if value, ok := w.Value(); ok {
			wv.ValueIn = &value
		}
		if height, ok := w.Height(); ok {
			wv.BlockHeight = &height
		}
		if index, ok := w.Index(); ok {
			wv.BlockIndex = &index
		}
		v.Witnesses = append(v.Witnesses, wv)
	}
	return v
}

func newBlockView(block *dcrwire.Block, decoder decred.ScriptDecoder) *blockView {
	h := &block.Header
	v := &blockView{
		Hash:          h.BlockHash().String(),
		PrevHash:      h.PrevBlock.String(),
		Height:        h.Height,
		Version:       h.Version,
		Timestamp:     h.Timestamp.Unix(),
		Voters:        h.Voters,
		FreshStake:    h.FreshStake,
		Revocations:   h.Revocations,
		SBits:         h.SBits,
		Size:          block.Size(),
		Transactions:  make([]*txView, 0, len(block.Transactions)),
		STransactions: make([]*txView, 0, len(block.STransactions)),
	}
	for _, tx := range block.Transactions {
		v.Transactions = append(v.Transactions, newTxView(tx, decoder))
	}
	for _, tx := range block.STransactions {
		v.STransactions = append(v.STransactions, newTxView(tx, decoder))
	}
	return v
}
