package bitcoin

import (
	"context"
	"fmt"

	"github.com/quick-xyz/indexer-sub001/pkg/safe"
)

// Source reports the chain frontier for discovery.
type Source struct {
	client RPCClient
}

// NewSource creates a Source on top of the node client.
func NewSource(client RPCClient) *Source {
	return &Source{client: client}
}

// LatestHeight returns the current chain tip height.
func (s *Source) LatestHeight(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := s.client.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count %d: %w", count, err)
	}
	return height, nil
}
