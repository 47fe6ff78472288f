package bitcoin

import (
	"fmt"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/quick-xyz/indexer-sub001/internal/model"
	"github.com/quick-xyz/indexer-sub001/pkg/safe"
)

// buildBlock decodes a verbose RPC block into store rows. Errors here mean
// the node handed back data we cannot represent; they are not retryable.
func buildBlock(network model.Network, src *btcjson.GetBlockVerboseTxResult) (model.Block, []model.Transaction, error) {
	var block model.Block

	height, err := safe.Uint64(src.Height)
	if err != nil {
		return block, nil, fmt.Errorf("block height %d: %w", src.Height, err)
	}
	bits, err := parseBits(src.Bits)
	if err != nil {
		return block, nil, fmt.Errorf("block %d bits parse: %w", src.Height, err)
	}
	size, err := safe.Uint32(src.Size)
	if err != nil {
		return block, nil, fmt.Errorf("block %d size: %w", src.Height, err)
	}
	version, err := safe.Uint32(src.Version)
	if err != nil {
		return block, nil, fmt.Errorf("block %d version: %w", src.Height, err)
	}

	timestamp := time.Unix(src.Time, 0).UTC()
	block = model.Block{
		Network:    network,
		Height:     height,
		Hash:       src.Hash,
		Timestamp:  timestamp,
		Version:    version,
		MerkleRoot: src.MerkleRoot,
		Bits:       bits,
		Nonce:      src.Nonce,
		Difficulty: src.Difficulty,
		Size:       size,
		TXCount:    uint32(len(src.Tx)),
	}

	txs := make([]model.Transaction, 0, len(src.Tx))
	for _, tx := range src.Tx {
		converted, err := convertTransaction(network, tx, height, timestamp)
		if err != nil {
			return block, nil, err
		}
		txs = append(txs, converted)
	}
	return block, txs, nil
}

func convertTransaction(network model.Network, tx btcjson.TxRawResult, height uint64, blockTime time.Time) (model.Transaction, error) {
	var out model.Transaction

	size, err := safe.Uint32(tx.Size)
	if err != nil {
		return out, fmt.Errorf("tx %s size: %w", tx.Txid, err)
	}
	vsize, err := safe.Uint32(tx.Vsize)
	if err != nil {
		return out, fmt.Errorf("tx %s vsize: %w", tx.Txid, err)
	}
	if len(tx.Vin) > int(^uint16(0)) {
		return out, fmt.Errorf("tx %s vin count overflow: %d", tx.Txid, len(tx.Vin))
	}
	if len(tx.Vout) > int(^uint16(0)) {
		return out, fmt.Errorf("tx %s vout count overflow: %d", tx.Txid, len(tx.Vout))
	}

	var total uint64
	for _, vout := range tx.Vout {
		sats, err := btcToSatoshis(vout.Value)
		if err != nil {
			return out, fmt.Errorf("tx %s vout %d value: %w", tx.Txid, vout.N, err)
		}
		total += sats
	}

	return model.Transaction{
		Network:     network,
		TxID:        tx.Txid,
		BlockHeight: height,
		Timestamp:   blockTime,
		Size:        size,
		VSize:       vsize,
		Version:     tx.Version,
		LockTime:    tx.LockTime,
		TotalOutput: total,
		InputCount:  uint16(len(tx.Vin)),
		OutputCount: uint16(len(tx.Vout)),
	}, nil
}

func parseBits(value string) (uint32, error) {
	parsed, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(parsed), nil
}

func btcToSatoshis(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return uint64(amt), nil
}
