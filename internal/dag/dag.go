// SPDX-License-Identifier: MPL-2.0

// Package dag provides directed graph operations for topological sorting and
// cycle detection. It orders rule-table dependencies so that every rule is
// visited after the rules it references.
package dag

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCycle is the sentinel error wrapped by CycleError.
var ErrCycle = errors.New("cycle detected")

type (
	// CycleError indicates that the graph contains a cycle, preventing topological ordering.
	CycleError[N comparable] struct {
		// Cycle contains the nodes left with unresolved in-edges. These are the
		// cycle members plus any node only reachable through them.
		Cycle []N
	}

	// Graph is a directed graph over comparable node keys.
	// An edge from A to B means A must be ordered before B.
	Graph[N comparable] struct {
		// adjacency maps each node to its outgoing neighbors.
		adjacency map[N][]N
		// nodes tracks all nodes in insertion order for deterministic output.
		nodes []N
		// nodeSet provides O(1) lookup for node existence.
		nodeSet map[N]bool
	}
)

func (e *CycleError[N]) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, n := range e.Cycle {
		parts[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("cycle detected among: %s", strings.Join(parts, ", "))
}

// Unwrap returns ErrCycle so callers can use errors.Is without naming N.
func (e *CycleError[N]) Unwrap() error { return ErrCycle }

// New creates an empty Graph.
func New[N comparable]() *Graph[N] {
	return &Graph[N]{
		adjacency: make(map[N][]N),
		nodeSet:   make(map[N]bool),
	}
}

// AddNode adds a node to the graph. If the node already exists, this is a no-op.
func (g *Graph[N]) AddNode(n N) {
	if g.nodeSet[n] {
		return
	}
	g.nodeSet[n] = true
	g.nodes = append(g.nodes, n)
}

// AddEdge adds a directed edge from -> to. Both nodes are implicitly added.
func (g *Graph[N]) AddEdge(from, to N) {
	g.AddNode(from)
	g.AddNode(to)
	g.adjacency[from] = append(g.adjacency[from], to)
}

// Len returns the number of nodes.
func (g *Graph[N]) Len() int { return len(g.nodes) }

// Successors returns the outgoing neighbors of n in insertion order.
func (g *Graph[N]) Successors(n N) []N {
	out := make([]N, len(g.adjacency[n]))
	copy(out, g.adjacency[n])
	return out
}

// TopologicalSort returns a valid order using Kahn's algorithm.
// Returns *CycleError if the graph contains a cycle.
// Nodes at the same topological level appear in the order they were first added.
func (g *Graph[N]) TopologicalSort() ([]N, error) {
	if len(g.nodes) == 0 {
		return nil, nil
	}

	inDegree := make(map[N]int, len(g.nodes))
	for _, node := range g.nodes {
		inDegree[node] = 0
	}
	for _, neighbors := range g.adjacency {
		for _, neighbor := range neighbors {
			inDegree[neighbor]++
		}
	}

	queue := make([]N, 0)
	for _, node := range g.nodes {
		if inDegree[node] == 0 {
			queue = append(queue, node)
		}
	}

	var result []N
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, neighbor := range g.adjacency[node] {
			inDegree[neighbor]--
			if inDegree[neighbor] == 0 {
				queue = append(queue, neighbor)
			}
		}
	}

	if len(result) != len(g.nodes) {
		var cycleNodes []N
		for _, node := range g.nodes {
			if inDegree[node] > 0 {
				cycleNodes = append(cycleNodes, node)
			}
		}
		return nil, &CycleError[N]{Cycle: cycleNodes}
	}

	return result, nil
}
