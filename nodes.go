package weaviate

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Node statuses.
const (
	NodeHealthy     = "HEALTHY"
	NodeUnhealthy   = "UNHEALTHY"
	NodeUnavailable = "UNAVAILABLE"
	NodeIndexing    = "INDEXING"
)

// NodesStatus is the cluster view returned by the nodes endpoint.
type NodesStatus struct {
	Nodes []NodeStatus `json:"nodes"`
}

// NodeStatus describes one cluster node: its build, health, and the
// shards it hosts.
type NodeStatus struct {
	Name       string      `json:"name"`
	Status     string      `json:"status"`
	Version    string      `json:"version,omitempty"`
	GitHash    string      `json:"gitHash,omitempty"`
	Stats      *NodeStats  `json:"stats,omitempty"`
	BatchStats *BatchStats `json:"batchStats,omitempty"`
	Shards     []NodeShard `json:"shards,omitempty"`
}

// NodeStats aggregates object and shard counts of one node.
type NodeStats struct {
	ObjectCount int64 `json:"objectCount"`
	ShardCount  int64 `json:"shardCount"`
}

// BatchStats reports a node's batch ingestion queue.
type BatchStats struct {
	QueueLength   int64 `json:"queueLength,omitempty"`
	RatePerSecond int64 `json:"ratePerSecond,omitempty"`
}

// NodeShard is one shard hosted on a node.
type NodeShard struct {
	Name        string `json:"name"`
	Class       string `json:"class"`
	ObjectCount int64  `json:"objectCount"`
}

// NodesClient wraps the /v1/nodes endpoint.
type NodesClient struct {
	t   *transport
	obs *observer
}

// Status fetches the health and shard layout of every cluster node.
func (n *NodesClient) Status(ctx context.Context) (_ *NodesStatus, err error) {
	start := time.Now()
	defer func() { n.obs.observe("nodes.status", start, err) }()

	var out NodesStatus
	if err = n.t.do(ctx, http.MethodGet, "/v1/nodes", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("get nodes status: %w", err)
	}
	return &out, nil
}
