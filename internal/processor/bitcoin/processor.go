package bitcoin

import (
	"context"
	"fmt"

	"github.com/quick-xyz/indexer-sub001/internal/model"
	"github.com/quick-xyz/indexer-sub001/pkg/safe"
	"go.uber.org/zap"
)

// Processor indexes one block per job: fetch from the node, decode, persist.
// Failures are classified so the queue knows whether to retry: node and
// store errors are transient, undecodable block data is permanent.
type Processor struct {
	network model.Network
	client  RPCClient
	writer  BlockWriter
	logger  *zap.Logger
}

// NewProcessor creates a Processor for the given network.
func NewProcessor(network model.Network, client RPCClient, writer BlockWriter, logger *zap.Logger) *Processor {
	return &Processor{
		network: network,
		client:  client,
		writer:  writer,
		logger:  logger,
	}
}

// Process indexes the block at the given height. Re-running a height
// overwrites the same rows, so retries after a partial write are safe.
func (p *Processor) Process(ctx context.Context, workKey uint64) error {
	if err := ctx.Err(); err != nil {
		return model.NewTransientError(err)
	}

	height, err := safe.Int64(workKey)
	if err != nil {
		return model.NewPermanentError(fmt.Errorf("block height %d: %w", workKey, err))
	}

	hash, err := p.client.GetBlockHash(height)
	if err != nil {
		return model.NewTransientError(fmt.Errorf("get block hash %d: %w", height, err))
	}
	src, err := p.client.GetBlockVerboseTx(hash)
	if err != nil {
		return model.NewTransientError(fmt.Errorf("get block %s: %w", hash, err))
	}

	block, txs, err := buildBlock(p.network, src)
	if err != nil {
		return model.NewPermanentError(fmt.Errorf("decode block %d: %w", height, err))
	}

	if err := p.writer.InsertBlock(ctx, block, txs); err != nil {
		return model.NewTransientError(fmt.Errorf("persist block %d: %w", height, err))
	}

	p.logger.Debug("indexed block",
		zap.Uint64("height", block.Height),
		zap.String("hash", block.Hash),
		zap.Uint32("tx_count", block.TXCount))
	return nil
}
