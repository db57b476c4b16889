// Package model defines domain models for UTXO ingestion.
package model

import "time"

// BlockStatus describes processing status of a block record.
type BlockStatus string

var (
	// BlockUnprocessed marks a block that has not been ingested yet.
	BlockUnprocessed BlockStatus = "unprocessed"
	// BlockProcessed marks a block that has been fully ingested.
	BlockProcessed BlockStatus = "processed"
)

// Block represents a Decred block persisted to ClickHouse.
type Block struct {
	Coin         Coin
	Network      Network
	Height       uint64
	Hash         string
	PrevHash     string
	Timestamp    time.Time
	Version      int32
	MerkleRoot   string
	StakeRoot    string
	VoteBits     uint16
	Voters       uint16
	FreshStake   uint8
	Revocations  uint8
	PoolSize     uint32
	Bits         uint32
	SBits        int64
	Nonce        uint32
	StakeVersion uint32
	Size         uint32
	TXCount      uint32
	STXCount     uint32
	Status       BlockStatus
}

// InsertBlock groups a block with its transactions and related inputs/outputs for batch insertion.
type InsertBlock struct {
	Block   Block
	Txs     []Transaction
	Outputs []TransactionOutput
	Inputs  []TransactionInput
}
