package bitcoin

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"go.uber.org/ratelimit"
)

// ClientConfig describes the node connection.
type ClientConfig struct {
	// URL is the node RPC endpoint, http only.
	URL      string
	User     string
	Password string
	// RPS caps outgoing RPC calls per second across all users of the client.
	RPS int
}

// NodeClient wraps rpcclient.Client with rate limiting and call metrics.
// It is safe for concurrent use.
type NodeClient struct {
	client  *rpcclient.Client
	rl      ratelimit.Limiter
	metrics ClientMetrics
}

// NewNodeClient connects to the node described by cfg.
func NewNodeClient(cfg ClientConfig, metrics ClientMetrics) (*NodeClient, error) {
	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}
	if cfg.RPS < 1 {
		cfg.RPS = 10
	}

	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         cfg.User,
		Pass:         cfg.Password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("init rpc client: %w", err)
	}

	return &NodeClient{
		client:  client,
		rl:      ratelimit.New(cfg.RPS),
		metrics: metrics,
	}, nil
}

// Close shuts the underlying client down and waits for in-flight calls.
func (c *NodeClient) Close() {
	c.client.Shutdown()
	c.client.WaitForShutdown()
}

func (c *NodeClient) GetBlockCount() (count int64, err error) {
	c.rl.Take()
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_block_count", err, started)
	}()
	return c.client.GetBlockCount()
}

func (c *NodeClient) GetBlockHash(height int64) (hash *chainhash.Hash, err error) {
	c.rl.Take()
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_block_hash", err, started)
	}()
	return c.client.GetBlockHash(height)
}

func (c *NodeClient) GetBlockVerboseTx(blockHash *chainhash.Hash) (res *btcjson.GetBlockVerboseTxResult, err error) {
	c.rl.Take()
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_block_verbose_tx", err, started)
	}()
	return c.client.GetBlockVerboseTx(blockHash)
}
