// Package dcrwire decodes Decred transactions and blocks from their wire encoding.
//
// Decoding is read-only over the caller's buffer: every function is a pure function of the
// buffer and a start offset, so a single buffer may be decoded from many goroutines at once.
package dcrwire

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Varint prefix tags.
const (
	varIntUint16Tag = 0xfd
	varIntUint32Tag = 0xfe
	varIntUint64Tag = 0xff
)

// Cursor reads little-endian values from a byte buffer while tracking the current offset.
// A failed read leaves the offset where it was.
type Cursor struct {
	buf    []byte
	offset int
}

// NewCursor returns a cursor positioned at offset. Offsets outside the buffer are clamped to
// its end so that the first read reports ErrUnexpectedEndOfInput.
func NewCursor(buf []byte, offset int) *Cursor {
	if offset < 0 || offset > len(buf) {
		offset = len(buf)
	}
	return &Cursor{buf: buf, offset: offset}
}

// Offset returns the position of the next unread byte.
func (c *Cursor) Offset() int {
	return c.offset
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.offset
}

// take returns the next n bytes without copying and advances past them.
func (c *Cursor) take(op string, n uint64) ([]byte, error) {
	if n > uint64(c.Remaining()) {
		return nil, endOfInput(op, c.offset, n, c.Remaining())
	}
	start := c.offset
	c.offset += int(n)
	return c.buf[start:c.offset:c.offset], nil
}

// ReadUint8 reads one byte.
func (c *Cursor) ReadUint8() (uint8, error) {
	b, err := c.take("read uint8", 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt8 reads one byte as a signed value.
func (c *Cursor) ReadInt8() (int8, error) {
	b, err := c.take("read int8", 1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// ReadUint16 reads a little-endian uint16.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.take("read uint16", 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 reads a little-endian uint32.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.take("read uint32", 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64 reads a little-endian uint64.
func (c *Cursor) ReadUint64() (uint64, error) {
	b, err := c.take("read uint64", 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt64 reads a little-endian two's complement int64.
func (c *Cursor) ReadInt64() (int64, error) {
	b, err := c.take("read int64", 8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// ReadHash reads 32 raw bytes.
func (c *Cursor) ReadHash() (chainhash.Hash, error) {
	var hash chainhash.Hash
	b, err := c.take("read hash", chainhash.HashSize)
	if err != nil {
		return hash, err
	}
	copy(hash[:], b)
	return hash, nil
}

// ReadBytes reads the next n bytes into a new slice owned by the caller.
func (c *Cursor) ReadBytes(n uint64) ([]byte, error) {
	b, err := c.take("read bytes", n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// ReadVarInt reads a variable length integer. Values encoded with a wider tag than necessary
// are accepted.
func (c *Cursor) ReadVarInt() (uint64, error) {
	start := c.offset
	tag, err := c.ReadUint8()
	if err != nil {
		return 0, err
	}

	var value uint64
	switch tag {
	case varIntUint16Tag:
		var v uint16
		v, err = c.ReadUint16()
		value = uint64(v)
	case varIntUint32Tag:
		var v uint32
		v, err = c.ReadUint32()
		value = uint64(v)
	case varIntUint64Tag:
		value, err = c.ReadUint64()
	default:
		return uint64(tag), nil
	}
	if err != nil {
		c.offset = start
		return 0, err
	}
	return value, nil
}

// ReadVarBytes reads a varint length followed by that many bytes.
func (c *Cursor) ReadVarBytes() ([]byte, error) {
	start := c.offset
	n, err := c.ReadVarInt()
	if err != nil {
		return nil, err
	}
	b, err := c.ReadBytes(n)
	if err != nil {
		c.offset = start
		return nil, err
	}
	return b, nil
}

// readCount reads a list length and rejects counts whose records cannot fit in the remaining
// bytes given the smallest possible encoding of one record.
func (c *Cursor) readCount(op string, minRecordSize uint64) (uint64, error) {
	start := c.offset
	count, err := c.ReadVarInt()
	if err != nil {
		return 0, err
	}
	if remaining := c.Remaining(); minRecordSize > 0 && count > uint64(remaining)/minRecordSize {
		c.offset = start
		return 0, &DecodeError{
			Op:     op,
			Offset: start,
			Err: fmt.Errorf("%w: %d records need at least %d bytes each, have %d",
				ErrUnexpectedEndOfInput, count, minRecordSize, remaining),
		}
	}
	return count, nil
}
