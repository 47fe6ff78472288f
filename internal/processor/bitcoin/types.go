// Package bitcoin fetches blocks from a bitcoin node, decodes them and
// writes the result to the analytics store. It implements the processing
// side of the pipeline; scheduling lives in the queue and worker packages.
package bitcoin

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/quick-xyz/indexer-sub001/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCClient is the subset of node RPC used by the processor. Calls carry
	// no context; the underlying client enforces its own HTTP timeout.
	RPCClient interface {
		GetBlockCount() (int64, error)
		GetBlockHash(height int64) (*chainhash.Hash, error)
		GetBlockVerboseTx(hash *chainhash.Hash) (*btcjson.GetBlockVerboseTxResult, error)
	}

	// BlockWriter persists one decoded block with its transactions.
	BlockWriter interface {
		InsertBlock(ctx context.Context, block model.Block, txs []model.Transaction) error
	}

	ClientMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
