// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//

package query

// dfsFrame holds one stack level's position in its own neighbor slice.
// nbrs is the graph's own adjacency slice (from xref's CalleeUIDs/
// CallerUIDs/DataSinkUIDs, all of which hand back their backing array
// directly) — idx is the only per-frame mutable state, so no neighbor
// list is ever copied (spec §4.E.1's "iterator into the graph's own
// adjacency set").
type dfsFrame struct {
	nbrs []uint64
	idx  int
}

// dfsEnumerate performs the iterative DFS described in spec §4.E.1,
// generalized to serve forward_trace, backtrace, and find_data_flow_paths
// alike: adjacency gives a node's outgoing neighbors, isTerminal decides
// when a neighbor ends a path (forward_trace: reaching END; backtrace:
// reaching a root or caller-specified stop; find_data_flow_paths: reaching
// the target variable), and allowed (nil for unrestricted) prunes
// branches that cannot reach the target, as the bidirectional search in
// FindPaths does with its precomputed can_reach_end set.
//
// Cycle avoidance is a set of nodes currently on the stack (Q1: emitted
// paths are simple). Returning false from cb stops enumeration within
// one step: the emit-and-continue loop checks cb's result immediately
// and returns before considering any further neighbor.
func (e *Engine) dfsEnumerate(start uint64, adjacency func(uint64) []uint64, isTerminal func(uint64) bool, allowed func(uint64) bool, cb PathCallback) {
	if isTerminal(start) {
		if !cb(e.names([]uint64{start})) {
			return
		}
	}

	inPath := map[uint64]bool{start: true}
	path := []uint64{start}
	stack := []dfsFrame{{nbrs: adjacency(start)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.idx >= len(top.nbrs) {
			stack = stack[:len(stack)-1]
			last := path[len(path)-1]
			delete(inPath, last)
			path = path[:len(path)-1]
			continue
		}

		nbr := top.nbrs[top.idx]
		top.idx++

		if inPath[nbr] {
			continue
		}
		if allowed != nil && !allowed(nbr) {
			continue
		}

		if isTerminal(nbr) {
			path = append(path, nbr)
			if !cb(e.names(path)) {
				return
			}
			path = path[:len(path)-1]
			continue
		}

		path = append(path, nbr)
		inPath[nbr] = true
		stack = append(stack, dfsFrame{nbrs: adjacency(nbr)})
	}
}

// reachableFrom runs a BFS over adjacency starting at from and returns
// every node it visits, including from itself (§4.E.1 step 1's
// can_reach_end set, when adjacency is CallerUIDs).
func reachableFrom(from uint64, adjacency func(uint64) []uint64) map[uint64]bool {
	visited := map[uint64]bool{from: true}
	queue := []uint64{from}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, n := range adjacency(node) {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return visited
}
