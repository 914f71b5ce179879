// SPDX-License-Identifier: MIT

package spatial

import (
	"sort"

	"github.com/katalvlaran/lvlath-persistence/cloud"
)

// Neighbor is one query hit.
type Neighbor struct {
	Index    int
	Distance float64
}

// Index is an exact radius-query oracle over a fixed cloud.
type Index interface {
	// Len is the number of indexed points.
	Len() int
	// Within returns all points other than i within L1 distance r of point
	// i, sorted by index. A negative r yields nothing.
	Within(i int, r float64) []Neighbor
}

// BruteForce scans every point per query.
type BruteForce struct {
	c *cloud.Cloud
}

var (
	_ Index = (*BruteForce)(nil)
	_ Index = (*KDTree)(nil)
)

// NewBruteForce indexes c without preprocessing.
func NewBruteForce(c *cloud.Cloud) *BruteForce { return &BruteForce{c: c} }

// Len implements Index.
func (b *BruteForce) Len() int { return b.c.Len() }

// Within implements Index.
func (b *BruteForce) Within(i int, r float64) []Neighbor {
	var out []Neighbor
	var d float64
	for j := 0; j < b.c.Len(); j++ {
		if j == i {
			continue
		}
		if d = b.c.Distance(i, j); d <= r {
			out = append(out, Neighbor{Index: j, Distance: d})
		}
	}

	return out
}

func sortByIndex(ns []Neighbor) {
	sort.Slice(ns, func(a, b int) bool { return ns[a].Index < ns[b].Index })
}
