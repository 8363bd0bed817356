package weaviate

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestNodes_Status(t *testing.T) {
	client := newTestClient(t, func(r chi.Router) {
		r.Get("/v1/nodes", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{
				"nodes": []map[string]any{{
					"name":    "weaviate-0",
					"status":  "HEALTHY",
					"version": "1.23.7",
					"gitHash": "e6b37ce",
					"stats":   map[string]int{"objectCount": 123, "shardCount": 2},
					"shards": []map[string]any{
						{"name": "a1b2", "class": "Article", "objectCount": 123},
					},
				}},
			})
		})
	})

	status, err := client.Nodes().Status(context.Background())
	if err != nil {
		t.Fatalf("Status() error: %v", err)
	}
	if len(status.Nodes) != 1 {
		t.Fatalf("len(Nodes) = %d, want 1", len(status.Nodes))
	}

	n := status.Nodes[0]
	if n.Status != NodeHealthy {
		t.Errorf("node status = %q, want %q", n.Status, NodeHealthy)
	}
	if n.Stats == nil || n.Stats.ObjectCount != 123 {
		t.Errorf("Stats = %+v, want 123 objects", n.Stats)
	}
	if len(n.Shards) != 1 || n.Shards[0].Class != "Article" {
		t.Errorf("Shards = %+v, want one Article shard", n.Shards)
	}
}
