package suite

import (
	"testing"

	"kts/internal/domain"
)

func TestFilterByName(t *testing.T) {
	all := []domain.TestCase{
		{ID: "test_pod_kill"},
		{ID: "test_pod_restart"},
		{ID: "test_node_drain"},
	}

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{
			name:    "empty pattern keeps everything",
			pattern: "",
			want:    []string{"test_pod_kill", "test_pod_restart", "test_node_drain"},
		},
		{
			name:    "prefix wildcard",
			pattern: "test_pod_*",
			want:    []string{"test_pod_kill", "test_pod_restart"},
		},
		{
			name:    "surrounding wildcards",
			pattern: "*node*",
			want:    []string{"test_node_drain"},
		},
		{
			name:    "plain substring",
			pattern: "restart",
			want:    []string{"test_pod_restart"},
		},
		{
			name:    "no match",
			pattern: "test_etcd_*",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByName(all, tt.pattern)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d tests, got %d", len(tt.want), len(got))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("test %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}
