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

import (
	perr "github.com/BiradarSiddhant02/pioneer/internal/errors"
	"github.com/BiradarSiddhant02/pioneer/pkg/xref"
)

// FindPaths dispatches on start/end per spec §4.E: start == START means
// backtrace from end, end == END means forward_trace from start to the
// synthetic sink, both sentinels is a BadQueryShape error, and anything
// else runs the bidirectional search (§4.E.1).
func (e *Engine) FindPaths(start, end string, cb PathCallback) error {
	if start == Start && end == End {
		return perr.BadQueryShape("both --start START and --end END given; pick exactly one sentinel")
	}
	if start == Start {
		return e.Backtrace(end, "", cb)
	}
	if end == End {
		return e.ForwardTrace(start, cb)
	}

	startUID, ok := e.g.GetUID(start)
	if !ok {
		return e.notFound(start)
	}
	endUID, ok := e.g.GetUID(end)
	if !ok {
		return e.notFound(end)
	}

	canReachEnd := reachableFrom(endUID, e.g.CallerUIDs)
	if !canReachEnd[startUID] {
		return nil
	}
	e.dfsEnumerate(startUID, e.g.CalleeUIDs,
		func(uid uint64) bool { return uid == endUID },
		func(uid uint64) bool { return canReachEnd[uid] },
		cb)
	return nil
}

// ForwardTrace enumerates every simple path from sym to the graph's
// synthetic END sink over the forward call graph.
func (e *Engine) ForwardTrace(sym string, cb PathCallback) error {
	uid, ok := e.g.GetUID(sym)
	if !ok {
		return e.notFound(sym)
	}
	endUID := e.g.EndUID()
	e.dfsEnumerate(uid, e.g.CalleeUIDs,
		func(candidate uint64) bool { return candidate == endUID },
		nil, cb)
	return nil
}

// Backtrace enumerates every simple path over the reverse call graph
// starting at sym, emitting one whenever it reaches a root (a node with
// no callers) or, if stopAt is non-empty, that caller-specified symbol.
// Paths are emitted root-first: reversed relative to the sym-outward
// traversal order.
func (e *Engine) Backtrace(sym, stopAt string, cb PathCallback) error {
	uid, ok := e.g.GetUID(sym)
	if !ok {
		return e.notFound(sym)
	}
	var stopUID uint64 = xref.InvalidUID
	if stopAt != "" {
		stopUID, ok = e.g.GetUID(stopAt)
		if !ok {
			return e.notFound(stopAt)
		}
	}

	isTerminal := func(candidate uint64) bool {
		if stopUID != xref.InvalidUID && candidate == stopUID {
			return true
		}
		return len(e.g.CallerUIDs(candidate)) == 0
	}

	e.dfsEnumerate(uid, e.g.CallerUIDs, isTerminal, nil, reversePaths(cb))
	return nil
}

// FindDataFlowPaths enumerates every simple path from src to variable
// over the forward data-flow graph.
func (e *Engine) FindDataFlowPaths(src, variable string, cb PathCallback) error {
	srcUID, ok := e.g.GetUID(src)
	if !ok {
		return e.notFound(src)
	}
	varUID, ok := e.g.GetUID(variable)
	if !ok {
		return e.notFound(variable)
	}
	e.dfsEnumerate(srcUID, e.g.DataSinkUIDs,
		func(candidate uint64) bool { return candidate == varUID },
		nil, cb)
	return nil
}

// reversePaths wraps cb so paths built by traversing backward (caller
// graph, variable-first) are delivered root/sym-first as spec §4.E
// requires for backtrace.
func reversePaths(cb PathCallback) PathCallback {
	return func(path []string) bool {
		reversed := make([]string, len(path))
		for i, name := range path {
			reversed[len(path)-1-i] = name
		}
		return cb(reversed)
	}
}
