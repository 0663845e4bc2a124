// SPDX-License-Identifier: MPL-2.0

// Package dag orders the nodes of a dependency graph so that every node
// comes after the nodes it depends on. The unitfile resolver uses it to
// build derived units after their base units.
package dag

import (
	"fmt"
	"strings"
)

type (
	// CycleError reports nodes that could not be ordered: members of a
	// cycle and any node depending on one, in insertion order.
	CycleError[K comparable] struct {
		Nodes []K
	}

	// Graph is a directed graph over comparable keys. An edge from A to B
	// means A must be handled before B.
	Graph[K comparable] struct {
		adjacency map[K][]K
		// nodes keeps insertion order so results are deterministic.
		nodes   []K
		nodeSet map[K]bool
	}
)

func (e *CycleError[K]) Error() string {
	parts := make([]string, len(e.Nodes))
	for i, n := range e.Nodes {
		parts[i] = fmt.Sprint(n)
	}
	return "dependency cycle among: " + strings.Join(parts, ", ")
}

// New creates an empty Graph.
func New[K comparable]() *Graph[K] {
	return &Graph[K]{
		adjacency: make(map[K][]K),
		nodeSet:   make(map[K]bool),
	}
}

// AddNode adds a node. Adding an existing node is a no-op.
func (g *Graph[K]) AddNode(node K) {
	if g.nodeSet[node] {
		return
	}
	g.nodeSet[node] = true
	g.nodes = append(g.nodes, node)
}

// AddEdge records that from must be handled before to, adding both nodes.
func (g *Graph[K]) AddEdge(from, to K) {
	g.AddNode(from)
	g.AddNode(to)
	g.adjacency[from] = append(g.adjacency[from], to)
}

// Len returns the number of nodes.
func (g *Graph[K]) Len() int { return len(g.nodes) }

// TopologicalSort returns every node after its dependencies, using Kahn's
// algorithm. Nodes that become ready at the same time keep insertion order.
func (g *Graph[K]) TopologicalSort() ([]K, error) {
	if len(g.nodes) == 0 {
		return nil, nil
	}

	inDegree := make(map[K]int, len(g.nodes))
	for _, targets := range g.adjacency {
		for _, to := range targets {
			inDegree[to]++
		}
	}

	queue := make([]K, 0, len(g.nodes))
	for _, node := range g.nodes {
		if inDegree[node] == 0 {
			queue = append(queue, node)
		}
	}

	for head := 0; head < len(queue); head++ {
		for _, to := range g.adjacency[queue[head]] {
			inDegree[to]--
			if inDegree[to] == 0 {
				queue = append(queue, to)
			}
		}
	}

	if len(queue) != len(g.nodes) {
		var stuck []K
		for _, node := range g.nodes {
			if inDegree[node] > 0 {
				stuck = append(stuck, node)
			}
		}
		return nil, &CycleError[K]{Nodes: stuck}
	}
	return queue, nil
}
