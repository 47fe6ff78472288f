package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/quick-xyz/indexer-sub001/internal/model"
)

// InsertBlock writes one block and its transactions. Both tables use
// ReplacingMergeTree keyed by height, so re-indexing a height converges to a
// single row per key instead of duplicating.
func (r *Repository) InsertBlock(ctx context.Context, block model.Block, txs []model.Transaction) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("insert_block", block.Network, err, started)
	}()

	if err := r.insertBlockRow(ctx, block); err != nil {
		return err
	}
	return r.insertTransactionRows(ctx, txs)
}

func (r *Repository) insertBlockRow(ctx context.Context, block model.Block) error {
	const query = `
INSERT INTO blocks (
	network,
	height,
	hash,
	timestamp,
	version,
	merkleroot,
	bits,
	nonce,
	difficulty,
	size,
	tx_count
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare block batch: %w", err)
	}
	if err := batch.Append(
		string(block.Network),
		block.Height,
		block.Hash,
		block.Timestamp,
		block.Version,
		block.MerkleRoot,
		block.Bits,
		block.Nonce,
		block.Difficulty,
		block.Size,
		block.TXCount,
	); err != nil {
		return fmt.Errorf("append block: %w", err)
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert block: %w", err)
	}
	return nil
}

func (r *Repository) insertTransactionRows(ctx context.Context, txs []model.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO transactions (
	network,
	txid,
	block_height,
	timestamp,
	size,
	vsize,
	version,
	locktime,
	total_output,
	input_count,
	output_count
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}
	for _, tx := range txs {
		if err := batch.Append(
			string(tx.Network),
			tx.TxID,
			tx.BlockHeight,
			tx.Timestamp,
			tx.Size,
			tx.VSize,
			tx.Version,
			tx.LockTime,
			tx.TotalOutput,
			tx.InputCount,
			tx.OutputCount,
		); err != nil {
			return fmt.Errorf("append transaction %s: %w", tx.TxID, err)
		}
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
