package dcrwire

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// SerType is the serialization type carried in the upper 16 bits of the encoded version.
type SerType uint16

const (
	// SerTypeFull carries the prefix and full witness data.
	SerTypeFull SerType = iota
	// SerTypeNoWitness carries only the prefix.
	SerTypeNoWitness
	// SerTypeOnlyWitness carries only full witness data.
	SerTypeOnlyWitness
	// SerTypeWitnessSigning carries only signature scripts.
	SerTypeWitnessSigning
	// SerTypeWitnessValueSigning carries only input values and signature scripts.
	SerTypeWitnessValueSigning
)

func (t SerType) String() string {
	switch t {
	case SerTypeFull:
		return "full"
	case SerTypeNoWitness:
		return "prefix"
	case SerTypeOnlyWitness:
		return "witness"
	case SerTypeWitnessSigning:
		return "witness-signing"
	case SerTypeWitnessValueSigning:
		return "witness-value-signing"
	default:
		return fmt.Sprintf("unknown(%d)", uint16(t))
	}
}

// Valid reports whether t is a known serialization type.
func (t SerType) Valid() bool {
	return t <= SerTypeWitnessValueSigning
}

// HasPrefix reports whether transactions of this type carry inputs, outputs, lock time and expiry.
func (t SerType) HasPrefix() bool {
	return t == SerTypeFull || t == SerTypeNoWitness
}

// HasWitness reports whether transactions of this type carry a witness list.
func (t SerType) HasWitness() bool {
	return t.Valid() && t != SerTypeNoWitness
}

// Tree values of an outpoint.
const (
	TreeRegular int8 = 0
	TreeStake   int8 = 1
)

// coinbasePrevIndex is the previous output index used by inputs that spend nothing.
const coinbasePrevIndex = 0xffffffff

// OutPoint references a previous transaction output.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
	Tree  int8
}

func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d:%d", o.Hash, o.Index, o.Tree)
}

// TxIn is the prefix part of a transaction input.
type TxIn struct {
	PrevOut  OutPoint
	Sequence uint32
}

// IsCoinbase reports whether the input references no previous output.
func (in TxIn) IsCoinbase() bool {
	return in.PrevOut.Index == coinbasePrevIndex && in.PrevOut.Hash == (chainhash.Hash{})
}

// TxOut is a transaction output.
type TxOut struct {
	Value    int64
	Version  uint16
	PkScript []byte
}

// Prefix is the non-witness part of a transaction.
type Prefix struct {
	Inputs   []TxIn
	Outputs  []TxOut
	LockTime uint32
	Expiry   uint32
}

// Witness is the witness data of one input. Its concrete type depends on the serialization
// type of the transaction it was decoded from: FullWitness, SigningWitness or
// ValueSigningWitness.
type Witness interface {
	// Script returns the signature script.
	Script() []byte
	// Value returns the input amount when the witness carries one.
	Value() (int64, bool)
	// Height returns the height of the block containing the spent output when present.
	Height() (uint32, bool)
	// Index returns the index of the spent transaction within its block when present.
	Index() (uint32, bool)

	minSize() uint64
}

// FullWitness is decoded from full and witness-only transactions.
type FullWitness struct {
	ValueIn         int64
	BlockHeight     uint32
	BlockIndex      uint32
	SignatureScript []byte
}

// Script returns the signature script.
func (w FullWitness) Script() []byte { return w.SignatureScript }

// Value returns the input amount.
func (w FullWitness) Value() (int64, bool) { return w.ValueIn, true }

// Height returns the height of the block containing the spent output.
func (w FullWitness) Height() (uint32, bool) { return w.BlockHeight, true }

// Index returns the index of the spent transaction within its block.
func (w FullWitness) Index() (uint32, bool) { return w.BlockIndex, true }

func (FullWitness) minSize() uint64 { return 8 + 4 + 4 + 1 }

// SigningWitness is decoded from witness-signing transactions.
type SigningWitness struct {
	SignatureScript []byte
}

// Script returns the signature script.
func (w SigningWitness) Script() []byte { return w.SignatureScript }

// Value always reports false, the amount is not serialized.
func (SigningWitness) Value() (int64, bool) { return 0, false }

// Height always reports false, the block height is not serialized.
func (SigningWitness) Height() (uint32, bool) { return 0, false }

// Index always reports false, the block index is not serialized.
func (SigningWitness) Index() (uint32, bool) { return 0, false }

func (SigningWitness) minSize() uint64 { return 1 }

// ValueSigningWitness is decoded from witness-value-signing transactions.
type ValueSigningWitness struct {
	ValueIn         int64
	SignatureScript []byte
}

// Script returns the signature script.
func (w ValueSigningWitness) Script() []byte { return w.SignatureScript }

// Value returns the input amount.
func (w ValueSigningWitness) Value() (int64, bool) { return w.ValueIn, true }

// Height always reports false, the block height is not serialized.
func (ValueSigningWitness) Height() (uint32, bool) { return 0, false }

// Index always reports false, the block index is not serialized.
func (ValueSigningWitness) Index() (uint32, bool) { return 0, false }

func (ValueSigningWitness) minSize() uint64 { return 8 + 1 }

// Transaction is a decoded transaction. Prefix is nil for witness-only serializations and
// Witnesses is nil for prefix-only serializations.
type Transaction struct {
	Version   uint16
	SerType   SerType
	Prefix    *Prefix
	Witnesses []Witness

	isCoinbase bool
	// prefixRaw aliases the prefix bytes of the source buffer, without the 4 byte header.
	prefixRaw []byte
	size      int
}

// Inputs returns the prefix inputs, or nil when the prefix is absent.
func (tx *Transaction) Inputs() []TxIn {
	if tx.Prefix == nil {
		return nil
	}
	return tx.Prefix.Inputs
}

// Outputs returns the prefix outputs, or nil when the prefix is absent.
func (tx *Transaction) Outputs() []TxOut {
	if tx.Prefix == nil {
		return nil
	}
	return tx.Prefix.Outputs
}

// LockTime returns the lock time and whether the prefix is present.
func (tx *Transaction) LockTime() (uint32, bool) {
	if tx.Prefix == nil {
		return 0, false
	}
	return tx.Prefix.LockTime, true
}

// Expiry returns the expiry height and whether the prefix is present.
func (tx *Transaction) Expiry() (uint32, bool) {
	if tx.Prefix == nil {
		return 0, false
	}
	return tx.Prefix.Expiry, true
}

// HasPrefix reports whether the prefix was decoded.
func (tx *Transaction) HasPrefix() bool {
	return tx.Prefix != nil
}

// HasWitness reports whether a witness list was decoded.
func (tx *Transaction) HasWitness() bool {
	return tx.Witnesses != nil
}

// IsCoinbase reports whether the first input references no previous output.
func (tx *Transaction) IsCoinbase() bool {
	return tx.isCoinbase
}

// Size returns the number of bytes the transaction occupied in the source buffer.
func (tx *Transaction) Size() int {
	return tx.size
}
