package decred

import (
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-decred/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-decred/pkg/dcrwire"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCClient is the subset of rpcclient.Client used against dcrd.
	RPCClient interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveBytes(operation string, n int)
	}
	// NodeClient is the instrumented node API the source depends on.
	NodeClient interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetRawBlock(hash *chainhash.Hash) ([]byte, error)
	}
	// DecodeMetrics records wire decoding outcomes.
	DecodeMetrics interface {
		ObserveBlock(err error)
		ObserveTransaction(tree model.Tree, serType dcrwire.SerType)
	}
	// BlockConverter maps a decoded block to domain rows.
	BlockConverter interface {
		Convert(block *dcrwire.Block) (*chain.Block, error)
	}
	// ScriptDecoder classifies scripts and renders them for storage.
	ScriptDecoder interface {
		DecodeOutput(version uint16, script []byte) OutputScript
		Disasm(script []byte) string
	}
)
