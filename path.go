// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package uri

import (
	"math"
	"sort"
	"strings"
)

const (
	// minWeight is the lower clamp bound for explicit path weights.
	minWeight = 0.1

	// defaultWeight is assigned to entries inserted without an explicit
	// weight. It is the maximum representable weight, so unweighted
	// entries sort after every explicitly weighted one.
	defaultWeight = math.MaxFloat64
)

// pathEntry is one weighted path segment held by a [Builder]. Two entries
// are equal only if both weight and text match; entries with equal text
// but different weights are distinct and never deduplicated.
type pathEntry struct {
	path   string
	weight float64
}

// clampWeight clamps w into [minWeight, defaultWeight]. NaN clamps to
// minWeight.
func clampWeight(w float64) float64 {
	if w > defaultWeight {
		return defaultWeight
	}
	if w < minWeight || math.IsNaN(w) {
		return minWeight
	}
	return w
}

// sortEntries sorts entries ascending by weight. The sort is stable:
// equal weights keep their insertion order.
func sortEntries(entries []pathEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].weight < entries[j].weight
	})
}

// joinEntries joins all non-empty entries, in their current order, with
// "/" and collapses literal "//" to "/" in a single non-overlapping
// pass. Runs of three or more slashes are only partially collapsed; this
// mirrors the composition rules in rivaas.dev/uri/resource and is kept
// deliberately.
func joinEntries(entries []pathEntry) (joined string, dropped int) {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.path == "" {
			dropped++
			continue
		}
		parts = append(parts, e.path)
	}
	return strings.ReplaceAll(strings.Join(parts, "/"), "//", "/"), dropped
}
