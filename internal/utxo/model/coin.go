package model

import (
	"fmt"
	"strings"
)

// Coin identifies the chain a row belongs to.
type Coin string

// Network identifies the network of a coin.
type Network string

var (
	DCR Coin = "DCR"
)

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Simnet  Network = "simnet"
)

// Tree identifies the transaction tree of a Decred block.
type Tree int8

var (
	// TreeRegular holds ordinary transfers and the coinbase.
	TreeRegular Tree = 0
	// TreeStake holds tickets, votes and revocations.
	TreeStake Tree = 1
)

func (t Tree) String() string {
	if t == TreeStake {
		return "stake"
	}
	return "regular"
}

// ParseNetwork maps a network name, including the node's aliases, to a Network.
func ParseNetwork(name string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "main", "mainnet":
		return Mainnet, nil
	case "test", "testnet", "testnet3":
		return Testnet, nil
	case "sim", "simnet":
		return Simnet, nil
	default:
		return "", fmt.Errorf("unknown network %q", name)
	}
}
