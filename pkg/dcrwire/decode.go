package dcrwire

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Smallest encodings of one list record, used to reject impossible counts before allocating.
const (
	minTxInSize  = chainhash.HashSize + 4 + 1 + 4
	minTxOutSize = 8 + 2 + 1
)

// Decode decodes a transaction starting at the beginning of buf.
func Decode(buf []byte) (*Transaction, int, error) {
	return DecodeTransaction(buf, 0)
}

// DecodeTransaction decodes one transaction starting at offset and returns it together with
// the offset of the first byte after it, so that transactions stored back to back can be
// decoded in sequence.
func DecodeTransaction(buf []byte, offset int) (*Transaction, int, error) {
	if offset < 0 || offset > len(buf) {
		return nil, offset, &DecodeError{
			Op:     "decode transaction",
			Offset: offset,
			Err:    fmt.Errorf("%w: offset outside buffer of %d bytes", ErrUnexpectedEndOfInput, len(buf)),
		}
	}
	c := NewCursor(buf, offset)
	tx, err := c.ReadTransaction()
	if err != nil {
		return nil, offset, err
	}
	return tx, c.Offset(), nil
}

// ReadTransaction decodes one transaction at the cursor. On failure the cursor is left at
// the position where the transaction started.
func (c *Cursor) ReadTransaction() (*Transaction, error) {
	start := c.offset
	tx, err := c.readTransaction()
	if err != nil {
		c.offset = start
		return nil, err
	}
	tx.size = c.offset - start
	return tx, nil
}

func (c *Cursor) readTransaction() (*Transaction, error) {
	start := c.offset
	version, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	serType, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}

	tx := &Transaction{
		Version: version,
		SerType: SerType(serType),
	}
	if !tx.SerType.Valid() {
		return nil, &DecodeError{
			Op:     "decode transaction",
			Offset: start + 2,
			Err:    fmt.Errorf("%w: %d", ErrInvalidSerializationType, serType),
		}
	}

	if tx.SerType.HasPrefix() {
		prefixStart := c.offset
		if tx.Prefix, err = c.readPrefix(); err != nil {
			return nil, err
		}
		tx.prefixRaw = c.buf[prefixStart:c.offset:c.offset]
		if len(tx.Prefix.Inputs) > 0 {
			tx.isCoinbase = tx.Prefix.Inputs[0].IsCoinbase()
		}
	}

	if tx.SerType.HasWitness() {
		if tx.Witnesses, err = c.readWitnesses(tx.SerType); err != nil {
			return nil, err
		}
	}

	return tx, nil
}

func (c *Cursor) readPrefix() (*Prefix, error) {
	inputs, err := c.readInputs()
	if err != nil {
		return nil, err
	}
	outputs, err := c.readOutputs()
	if err != nil {
		return nil, err
	}
	lockTime, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	expiry, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	return &Prefix{
		Inputs:   inputs,
		Outputs:  outputs,
		LockTime: lockTime,
		Expiry:   expiry,
	}, nil
}

func (c *Cursor) readInputs() ([]TxIn, error) {
	count, err := c.readCount("read inputs", minTxInSize)
	if err != nil {
		return nil, err
	}
	inputs := make([]TxIn, count)
	for i := range inputs {
		if inputs[i], err = c.readInput(); err != nil {
			return nil, err
		}
	}
	return inputs, nil
}

func (c *Cursor) readInput() (TxIn, error) {
	var (
		in  TxIn
		err error
	)
	if in.PrevOut.Hash, err = c.ReadHash(); err != nil {
		return in, err
	}
	if in.PrevOut.Index, err = c.ReadUint32(); err != nil {
		return in, err
	}
	if in.PrevOut.Tree, err = c.ReadInt8(); err != nil {
		return in, err
	}
	if in.Sequence, err = c.ReadUint32(); err != nil {
		return in, err
	}
	return in, nil
}

func (c *Cursor) readOutputs() ([]TxOut, error) {
	count, err := c.readCount("read outputs", minTxOutSize)
	if err != nil {
		return nil, err
	}
	outputs := make([]TxOut, count)
	for i := range outputs {
		if outputs[i], err = c.readOutput(); err != nil {
			return nil, err
		}
	}
	return outputs, nil
}

func (c *Cursor) readOutput() (TxOut, error) {
	var (
		out TxOut
		err error
	)
	if out.Value, err = c.ReadInt64(); err != nil {
		return out, err
	}
	if out.Version, err = c.ReadUint16(); err != nil {
		return out, err
	}
	if out.PkScript, err = c.ReadVarBytes(); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Cursor) readWitnesses(serType SerType) ([]Witness, error) {
	var read func() (Witness, error)
	var minSize uint64
	switch serType {
	case SerTypeFull, SerTypeOnlyWitness:
		read, minSize = c.readFullWitness, FullWitness{}.minSize()
	case SerTypeWitnessSigning:
		read, minSize = c.readSigningWitness, SigningWitness{}.minSize()
	case SerTypeWitnessValueSigning:
		read, minSize = c.readValueSigningWitness, ValueSigningWitness{}.minSize()
	default:
		return nil, &DecodeError{
			Op:     "read witnesses",
			Offset: c.offset,
			Err:    fmt.Errorf("%w: %d carries no witness", ErrInvalidSerializationType, uint16(serType)),
		}
	}

	count, err := c.readCount("read witnesses", minSize)
	if err != nil {
		return nil, err
	}
	witnesses := make([]Witness, count)
	for i := range witnesses {
		if witnesses[i], err = read(); err != nil {
			return nil, err
		}
	}
	return witnesses, nil
}

func (c *Cursor) readFullWitness() (Witness, error) {
	var (
		w   FullWitness
		err error
	)
	if w.ValueIn, err = c.ReadInt64(); err != nil {
		return nil, err
	}
	if w.BlockHeight, err = c.ReadUint32(); err != nil {
		return nil, err
	}
	if w.BlockIndex, err = c.ReadUint32(); err != nil {
		return nil, err
	}
	if w.SignatureScript, err = c.ReadVarBytes(); err != nil {
		return nil, err
	}
	return w, nil
}

func (c *Cursor) readSigningWitness() (Witness, error) {
	script, err := c.ReadVarBytes()
	if err != nil {
		return nil, err
	}
	return SigningWitness{SignatureScript: script}, nil
}

func (c *Cursor) readValueSigningWitness() (Witness, error) {
	var (
		w   ValueSigningWitness
		err error
	)
	if w.ValueIn, err = c.ReadInt64(); err != nil {
		return nil, err
	}
	if w.SignatureScript, err = c.ReadVarBytes(); err != nil {
		return nil, err
	}
	return w, nil
}
