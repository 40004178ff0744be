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

package persist

import (
	"sort"
	"strings"

	"github.com/BiradarSiddhant02/pioneer/pkg/xref"
)

// trieNode is one directory component. Files sits directly in this
// directory; children holds subdirectories keyed by path segment.
type trieNode struct {
	files    []uint64
	children map[string]*trieNode
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[string]*trieNode)}
}

// buildTrie splits every indexed file's path into directory segments and
// attaches its UID to the node for the directory it lives directly in
// (spec §4.D: "each node carries a list of file_uids for files directly
// in that directory").
func buildTrie(g *xref.Graph) *trieNode {
	root := newTrieNode()
	g.RangeFiles(func(f xref.File) {
		dir, _ := splitDir(f.Path)
		node := root
		if dir != "" {
			for _, seg := range strings.Split(dir, "/") {
				if seg == "" {
					continue
				}
				child, ok := node.children[seg]
				if !ok {
					child = newTrieNode()
					node.children[seg] = child
				}
				node = child
			}
		}
		node.files = append(node.files, f.UID)
	})
	return root
}

// splitDir separates a slash-normalized path into its directory and base
// name. It does not touch the filesystem; paths are whatever Discover
// recorded.
func splitDir(path string) (dir, base string) {
	normalized := strings.ReplaceAll(path, "\\", "/")
	idx := strings.LastIndex(normalized, "/")
	if idx < 0 {
		return "", normalized
	}
	return normalized[:idx], normalized[idx+1:]
}

func writeTrieNode(enc *encoder, n *trieNode) {
	enc.raw("{")
	enc.key("files")
	enc.raw("[")
	for i, uid := range n.files {
		if i > 0 {
			enc.raw(",")
		}
		enc.uint(uid)
	}
	enc.raw("]")

	if len(n.children) > 0 {
		enc.raw(",")
		enc.key("children")
		enc.raw("{")
		names := make([]string, 0, len(n.children))
		for name := range n.children {
			names = append(names, name)
		}
		sort.Strings(names)
		for i, name := range names {
			if i > 0 {
				enc.raw(",")
			}
			enc.key(name)
			writeTrieNode(enc, n.children[name])
		}
		enc.raw("}")
	}
	enc.raw("}")
}
