package dcrwire

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/crypto/blake256"
)

// TxHash returns the transaction hash, which commits to the prefix only. It reports false
// when the transaction was decoded without a prefix.
func (tx *Transaction) TxHash() (chainhash.Hash, bool) {
	if tx.Prefix == nil {
		return chainhash.Hash{}, false
	}

	var header [4]byte
	binary.LittleEndian.PutUint16(header[0:2], tx.Version)
	binary.LittleEndian.PutUint16(header[2:4], uint16(SerTypeNoWitness))

	return hashB(header[:], tx.prefixRaw), true
}

// BlockHash returns the hash of the serialized header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	return hashB(h.raw[:])
}

func hashB(parts ...[]byte) chainhash.Hash {
	hasher := blake256.New()
	for _, part := range parts {
		_, _ = hasher.Write(part)
	}
	var hash chainhash.Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}
