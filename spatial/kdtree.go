// SPDX-License-Identifier: MIT

package spatial

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/lvlath-persistence/cloud"
)

// KDTree answers radius queries with a gonum kd-tree built over the cloud.
//
// gonum prunes a subtree when the squared offset to its split plane exceeds
// the keeper's Max().Dist, so point distances are reported as L1². One axis
// offset never exceeds the L1 distance, which keeps the pruning exact.
type KDTree struct {
	c    *cloud.Cloud
	tree *kdtree.Tree
}

// NewKDTree builds the tree over all points of c.
func NewKDTree(c *cloud.Cloud) *KDTree {
	pts := make(kdPoints, c.Len())
	for i := range pts {
		pts[i] = kdPoint{idx: i, at: c.At(i)}
	}

	return &KDTree{c: c, tree: kdtree.New(pts, false)}
}

// Len implements Index.
func (t *KDTree) Len() int { return t.c.Len() }

// Within implements Index.
func (t *KDTree) Within(i int, r float64) []Neighbor {
	if r < 0 {
		return nil
	}
	k := &radiusKeeper{c: t.c, q: i, r: r, bound: math.Nextafter(r*r, math.Inf(1))}
	t.tree.NearestSet(k, kdPoint{idx: i, at: t.c.At(i)})
	sortByIndex(k.hits)

	return k.hits
}

// kdPoint is a cloud point tagged with its index.
type kdPoint struct {
	idx int
	at  cloud.Point
}

// Compare returns the signed offset of p from c along axis d.
func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.at[d] - c.(kdPoint).at[d]
}

func (p kdPoint) Dims() int { return len(p.at) }

// Distance returns the squared L1 distance.
func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	d := cloud.L1(p.at, c.(kdPoint).at)

	return d * d
}

type kdPoints []kdPoint

func (p kdPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p kdPoints) Len() int { return len(p) }
func (p kdPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}

// Pivot partitions p around the median along d.
func (p kdPoints) Pivot(d kdtree.Dim) int {
	pl := kdPlane{pts: p, dim: d}

	return kdtree.Partition(pl, kdtree.MedianOfMedians(pl))
}

// kdPlane orders points along one axis, ties broken by index.
type kdPlane struct {
	pts kdPoints
	dim kdtree.Dim
}

func (pl kdPlane) Len() int { return len(pl.pts) }
func (pl kdPlane) Swap(i, j int) { pl.pts[i], pl.pts[j] = pl.pts[j], pl.pts[i] }
func (pl kdPlane) Less(i, j int) bool {
	a, b := pl.pts[i], pl.pts[j]
	if a.at[pl.dim] != b.at[pl.dim] {
		return a.at[pl.dim] < b.at[pl.dim]
	}
	return a.idx < b.idx
}
func (pl kdPlane) Slice(start, end int) kdtree.SortSlicer {
	return kdPlane{pts: pl.pts[start:end], dim: pl.dim}
}

// radiusKeeper collects every point within r of point q.
//
// Membership is decided on the unsquared distance from cloud.Cloud.Distance,
// so results agree with BruteForce at r exactly. Max reports a fixed bound
// one ulp above r² and never a nil Comparable, so NearestSet neither
// tightens the search nor drops a hit as its sentinel.
type radiusKeeper struct {
	c     *cloud.Cloud
	q     int
	r     float64
	bound float64
	hits  []Neighbor
}

func (k *radiusKeeper) Keep(cd kdtree.ComparableDist) {
	j := cd.Comparable.(kdPoint).idx
	if j == k.q {
		return
	}
	if d := k.c.Distance(k.q, j); d <= k.r {
		k.hits = append(k.hits, Neighbor{Index: j, Distance: d})
	}
}

func (k *radiusKeeper) Max() kdtree.ComparableDist {
	return kdtree.ComparableDist{Comparable: kdPoint{idx: k.q}, Dist: k.bound}
}

// sort.Interface and heap.Interface are required by kdtree.Keeper; hits are
// reordered by index after the search.
func (k *radiusKeeper) Len() int { return len(k.hits) }
func (k *radiusKeeper) Less(i, j int) bool { return k.hits[i].Distance < k.hits[j].Distance }
func (k *radiusKeeper) Swap(i, j int) { k.hits[i], k.hits[j] = k.hits[j], k.hits[i] }
func (k *radiusKeeper) Push(x any) { k.hits = append(k.hits, x.(Neighbor)) }
func (k *radiusKeeper) Pop() any {
	last := k.hits[len(k.hits)-1]
	k.hits = k.hits[:len(k.hits)-1]

	return last
}
