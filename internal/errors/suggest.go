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

package errors

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

func distance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

const maxSuggestions = 5

// SuggestionsFor ranks candidates by edit distance to target and returns
// the closest ones, capped at maxSuggestions (spec §7's "did you mean").
// Candidates tied on distance keep the order they were passed in.
func SuggestionsFor(target string, candidates []string, max int) []string {
	if max <= 0 || max > maxSuggestions {
		max = maxSuggestions
	}
	if len(candidates) == 0 {
		return nil
	}

	type scored struct {
		name string
		dist int
		idx  int
	}
	scoredCandidates := make([]scored, len(candidates))
	for i, c := range candidates {
		scoredCandidates[i] = scored{name: c, dist: distance(target, c), idx: i}
	}
	sort.SliceStable(scoredCandidates, func(i, j int) bool {
		return scoredCandidates[i].dist < scoredCandidates[j].dist
	})

	if max > len(scoredCandidates) {
		max = len(scoredCandidates)
	}
	out := make([]string, max)
	for i := 0; i < max; i++ {
		out[i] = scoredCandidates[i].name
	}
	return out
}
