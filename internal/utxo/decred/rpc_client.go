package decred

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// rpcClient wraps the dcrd JSON-RPC client with metrics instrumentation.
type rpcClient struct {
	client     RPCClient
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented node client.
func NewRPCClient(client RPCClient, rpcMetrics RPCMetrics) NodeClient {
	return &rpcClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// GetBlockCount returns the height of the best block.
func (r *rpcClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

// GetBlockHash returns the block hash for a height.
func (r *rpcClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

// GetRawBlock returns the wire encoding of a block, requested as `getblock <hash> false`.
func (r *rpcClient) GetRawBlock(hash *chainhash.Hash) (raw []byte, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_block", err, started)
	}()

	hashParam, err := json.Marshal(hash.String())
	if err != nil {
		return nil, err
	}
	verboseParam, err := json.Marshal(false)
	if err != nil {
		return nil, err
	}

	res, err := r.client.RawRequest("getblock", []json.RawMessage{hashParam, verboseParam})
	if err != nil {
		return nil, err
	}

	var blockHex string
	if err = json.Unmarshal(res, &blockHex); err != nil {
		return nil, fmt.Errorf("unmarshal getblock result: %w", err)
	}
	raw, err = hex.DecodeString(blockHex)
	if err != nil {
		return nil, fmt.Errorf("decode getblock hex: %w", err)
	}
	r.rpcMetrics.ObserveBytes("get_raw_block", len(raw))
	return raw, nil
}
