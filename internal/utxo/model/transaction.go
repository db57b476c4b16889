package model

import "time"

// Transaction represents a Decred transaction with aggregated metadata.
type Transaction struct {
	Coin        Coin
	Network     Network
	TxID        string
	BlockHeight uint64
	Tree        Tree
	BlockIndex  uint32
	Timestamp   time.Time
	Size        uint32
	Version     uint16
	LockTime    uint32
	Expiry      uint32
	InputCount  uint32
	OutputCount uint32
	IsCoinbase  bool
}

// TransactionInput describes a reference to a previous transaction output together with
// the witness data the block carries for it.
type TransactionInput struct {
	Coin         Coin
	Network      Network
	BlockHeight  uint64
	TxID         string
	Index        uint32
	PrevTxID     string
	PrevVout     uint32
	PrevTree     Tree
	Sequence     uint32
	IsCoinbase   bool
	Value        int64
	PrevHeight   uint32
	PrevIndex    uint32
	ScriptSigHex string
	ScriptSigAsm string
}

// TransactionOutput represents an output produced by a transaction.
type TransactionOutput struct {
	Coin          Coin
	Network       Network
	BlockHeight   uint64
	TxID          string
	Index         uint32
	Value         int64
	ScriptVersion uint16
	ScriptType    string
	ScriptHex     string
	ScriptAsm     string
	Addresses     []string
}
