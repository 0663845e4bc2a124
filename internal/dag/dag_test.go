// SPDX-License-Identifier: MPL-2.0

package dag

import (
	"errors"
	"slices"
	"testing"
)

func TestTopologicalSort_EmptyGraph(t *testing.T) {
	t.Parallel()
	g := New[string]()
	order, err := g.TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order != nil {
		t.Errorf("expected nil, got %v", order)
	}
}

func TestTopologicalSort_Chains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edges [][2]string
		nodes []string
		want  []string
	}{
		{
			name:  "single node",
			nodes: []string{"meter"},
			want:  []string{"meter"},
		},
		{
			name:  "declared before base",
			nodes: []string{"mile", "foot", "meter"},
			edges: [][2]string{{"foot", "mile"}, {"meter", "foot"}},
			want:  []string{"meter", "foot", "mile"},
		},
		{
			name:  "independent roots keep insertion order",
			nodes: []string{"second", "meter", "kilogram"},
			want:  []string{"second", "meter", "kilogram"},
		},
		{
			name:  "duplicate edges",
			edges: [][2]string{{"meter", "kilometer"}, {"meter", "kilometer"}},
			want:  []string{"meter", "kilometer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := New[string]()
			for _, n := range tt.nodes {
				g.AddNode(n)
			}
			for _, e := range tt.edges {
				g.AddEdge(e[0], e[1])
			}
			order, err := g.TopologicalSort()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(order, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, order)
			}
		})
	}
}

func TestTopologicalSort_Diamond(t *testing.T) {
	t.Parallel()
	g := New[int]()
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 3)

	order, err := g.TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(order, []int{0, 1, 2, 3}) {
		t.Errorf("expected [0 1 2 3], got %v", order)
	}
	if g.Len() != 4 {
		t.Errorf("Len() = %d, want 4", g.Len())
	}
}

func TestTopologicalSort_Cycles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edges [][2]int
		want  []int
	}{
		{"self loop", [][2]int{{0, 0}}, []int{0}},
		{"two nodes", [][2]int{{0, 1}, {1, 0}}, []int{0, 1}},
		{"three nodes", [][2]int{{0, 1}, {1, 2}, {2, 0}}, []int{0, 1, 2}},
		{"dependent of cycle", [][2]int{{3, 0}, {0, 1}, {1, 0}, {1, 2}}, []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := New[int]()
			for _, e := range tt.edges {
				g.AddEdge(e[0], e[1])
			}
			_, err := g.TopologicalSort()
			var cycleErr *CycleError[int]
			if !errors.As(err, &cycleErr) {
				t.Fatalf("expected *CycleError, got %T: %v", err, err)
			}
			if !slices.Equal(cycleErr.Nodes, tt.want) {
				t.Errorf("expected stuck nodes %v, got %v", tt.want, cycleErr.Nodes)
			}
		})
	}
}

func TestCycleError_Message(t *testing.T) {
	t.Parallel()
	err := &CycleError[string]{Nodes: []string{"a", "b"}}
	expected := "dependency cycle among: a, b"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}
