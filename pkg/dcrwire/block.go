package dcrwire

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// BlockHeaderSize is the size of a serialized block header.
const BlockHeaderSize = 180

// minTxSize is the smallest possible transaction: a header and one empty witness list.
const minTxSize = 4 + 1

// BlockHeader is a decoded block header.
type BlockHeader struct {
	Version      int32
	PrevBlock    chainhash.Hash
	MerkleRoot   chainhash.Hash
	StakeRoot    chainhash.Hash
	VoteBits     uint16
	FinalState   [6]byte
	Voters       uint16
	FreshStake   uint8
	Revocations  uint8
	PoolSize     uint32
	Bits         uint32
	SBits        int64
	Height       uint32
	Size         uint32
	Timestamp    time.Time
	Nonce        uint32
	ExtraData    [32]byte
	StakeVersion uint32

	raw [BlockHeaderSize]byte
}

// Block is a decoded block: a header followed by the regular and stake transaction trees.
type Block struct {
	Header        BlockHeader
	Transactions  []*Transaction
	STransactions []*Transaction
	size          int
}

// Size returns the number of bytes the block occupied in the source buffer.
func (b *Block) Size() int {
	return b.size
}

// ReadBlockHeader decodes a block header at the cursor.
func (c *Cursor) ReadBlockHeader() (*BlockHeader, error) {
	raw, err := c.take("read block header", BlockHeaderSize)
	if err != nil {
		return nil, err
	}

	h := &BlockHeader{}
	copy(h.raw[:], raw)

	// The header is fixed size, so the fields below cannot run out of input.
	hc := NewCursor(h.raw[:], 0)
	version, _ := hc.ReadUint32()
	h.Version = int32(version)
	h.PrevBlock, _ = hc.ReadHash()
	h.MerkleRoot, _ = hc.ReadHash()
	h.StakeRoot, _ = hc.ReadHash()
	h.VoteBits, _ = hc.ReadUint16()
	finalState, _ := hc.take("read final state", 6)
	copy(h.FinalState[:], finalState)
	h.Voters, _ = hc.ReadUint16()
	h.FreshStake, _ = hc.ReadUint8()
	h.Revocations, _ = hc.ReadUint8()
	h.PoolSize, _ = hc.ReadUint32()
	h.Bits, _ = hc.ReadUint32()
	h.SBits, _ = hc.ReadInt64()
	h.Height, _ = hc.ReadUint32()
	h.Size, _ = hc.ReadUint32()
	timestamp, _ := hc.ReadUint32()
	h.Timestamp = time.Unix(int64(timestamp), 0).UTC()
	h.Nonce, _ = hc.ReadUint32()
	extraData, _ := hc.take("read extra data", 32)
	copy(h.ExtraData[:], extraData)
	h.StakeVersion, _ = hc.ReadUint32()

	return h, nil
}

// DecodeBlock decodes a block starting at offset and returns it with the offset of the first
// byte after it.
func DecodeBlock(buf []byte, offset int) (*Block, int, error) {
	if offset < 0 || offset > len(buf) {
		return nil, offset, &DecodeError{
			Op:     "decode block",
			Offset: offset,
			Err:    fmt.Errorf("%w: offset outside buffer of %d bytes", ErrUnexpectedEndOfInput, len(buf)),
		}
	}

	c := NewCursor(buf, offset)
	header, err := c.ReadBlockHeader()
	if err != nil {
		return nil, offset, err
	}
	txs, err := c.readTxTree("read regular transactions")
	if err != nil {
		return nil, offset, err
	}
	stxs, err := c.readTxTree("read stake transactions")
	if err != nil {
		return nil, offset, err
	}

	return &Block{
		Header:        *header,
		Transactions:  txs,
		STransactions: stxs,
		size:          c.Offset() - offset,
	}, c.Offset(), nil
}

func (c *Cursor) readTxTree(op string) ([]*Transaction, error) {
	count, err := c.readCount(op, minTxSize)
	if err != nil {
		return nil, err
	}
	txs := make([]*Transaction, 0, count)
	for i := uint64(0); i < count; i++ {
		tx, err := c.ReadTransaction()
		if err != nil {
			return nil, fmt.Errorf("%s: transaction %d: %w", op, i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
