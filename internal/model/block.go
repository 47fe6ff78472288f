package model

import "time"

// Network identifies the chain network a block belongs to.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// Block is a decoded block header row persisted to the analytics store.
type Block struct {
	Network    Network
	Height     uint64
	Hash       string
	Timestamp  time.Time
	Version    uint32
	MerkleRoot string
	Bits       uint32
	Nonce      uint32
	Difficulty float64
	Size       uint32
	TXCount    uint32
}

// Transaction is a decoded transaction row persisted alongside its block.
type Transaction struct {
	Network     Network
	TxID        string
	BlockHeight uint64
	Timestamp   time.Time
	Size        uint32
	VSize       uint32
	Version     uint32
	LockTime    uint32
	TotalOutput uint64
	InputCount  uint16
	OutputCount uint16
}
