// SPDX-License-Identifier: MIT

package rips

import (
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlath-persistence/cloud"
	"github.com/katalvlaran/lvlath-persistence/homology"
	"github.com/katalvlaran/lvlath-persistence/metrics"
	"github.com/katalvlaran/lvlath-persistence/simplicial"
	"github.com/katalvlaran/lvlath-persistence/spatial"
)

// Record is one barcode interval [Start, End) on which H_0..H_{T−1} are
// constant. Ranks[k] and Torsions[k] describe H_k.
type Record struct {
	Start    float64   `json:"start"`
	End      float64   `json:"end"`
	Ranks    []int     `json:"ranks"`
	Torsions [][]int64 `json:"torsions"`
}

// Builder owns the filtration state of one point cloud.
type Builder struct {
	cloud *cloud.Cloud
	opts  Options
	log   zerolog.Logger

	eps        float64
	skel       *Skeleton
	raw        []simplicial.Simplex
	triangles  map[[3]int]struct{}
	tetrahedra map[[4]int]struct{}
}

// New validates the configuration; nothing is scanned yet.
//
// Errors: ErrNilCloud, ErrOptionViolation, ErrIndexMismatch,
// cloud.ErrUnsupportedDimension.
func New(c *cloud.Cloud, opts ...Option) (*Builder, error) {
	if c == nil {
		return nil, ErrNilCloud
	}
	if d := c.Dim(); d != 2 && d != 3 {
		return nil, errors.Wrapf(cloud.ErrUnsupportedDimension, "got %d", d)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Index == nil {
		o.Index = spatial.NewKDTree(c)
	}
	if o.Index.Len() != c.Len() {
		return nil, errors.Wrapf(ErrIndexMismatch, "index has %d points, cloud %d", o.Index.Len(), c.Len())
	}

	b := &Builder{
		cloud: c,
		opts:  o,
		log:   o.Logger.With().Str("component", "rips").Logger(),
	}
	b.reset()

	return b, nil
}

// reset seeds the raw complex with every 0-simplex.
func (b *Builder) reset() {
	n := b.cloud.Len()
	b.eps = 0
	b.skel = newSkeleton(n)
	b.raw = make([]simplicial.Simplex, 0, n)
	for i := 0; i < n; i++ {
		b.raw = append(b.raw, simplicial.MustSimplex(i))
	}
	b.triangles = make(map[[3]int]struct{})
	b.tetrahedra = make(map[[4]int]struct{})
}

// Epsilon is the current scale; after Analyze it is the first ε past end.
func (b *Builder) Epsilon() float64 { return b.eps }

// Skeleton returns a copy of the current 1-skeleton.
func (b *Builder) Skeleton() *Skeleton { return b.skel.Clone() }

// Simplices returns a copy of the accumulated simplex list in insertion order.
func (b *Builder) Simplices() []simplicial.Simplex {
	out := make([]simplicial.Simplex, len(b.raw))
	copy(out, b.raw)

	return out
}

// Complex builds the current complex over ring.
func (b *Builder) Complex(ring simplicial.Ring) (*simplicial.Complex, error) {
	return simplicial.NewComplex(ring, b.raw)
}

// Analyze runs a fresh filtration scan over ε_k = k·step for all ε_k ≤ end
// and returns the barcode records, ordered by Start. The records cover
// [0, ε_final) without gaps, where ε_final is the first ε_k above end.
//
// Each ε_k is computed as float64(k)*step, not by repeated ε += step. A scan
// that accumulates drifts by rounding, so at exact float ties (an edge
// length equal to a grid scale) its record boundaries can land one step away
// from these.
//
// Errors: ErrBadStep, ErrBadEnd, homology.ErrUnsupportedRing (all before the
// scan starts), ctx.Err() on cancellation, and any homology failure.
func (b *Builder) Analyze(ring simplicial.Ring, end, step float64) ([]Record, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, errors.Wrapf(ErrBadStep, "step=%g", step)
	}
	if !(end >= 0) || math.IsInf(end, 0) {
		return nil, errors.Wrapf(ErrBadEnd, "end=%g", end)
	}
	if ring != simplicial.R && ring != simplicial.Z {
		return nil, errors.Wrapf(homology.ErrUnsupportedRing, "H(-,%s)", ring)
	}

	started := time.Now()
	defer func() { metrics.ScanDurationSeconds.Observe(time.Since(started).Seconds()) }()

	b.reset()
	b.log.Info().
		Int("points", b.cloud.Len()).
		Int("dim", b.cloud.Dim()).
		Str("ring", ring.String()).
		Float64("end", end).
		Float64("step", step).
		Int("degrees", b.opts.Degrees).
		Msg("starting filtration scan")

	var (
		records []Record
		current Record
		groups  []homology.Group
		st      Step
		err     error
	)
	for k := 0; ; k++ {
		b.eps = float64(k) * step
		if b.eps > end {
			break
		}
		if err = b.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		metrics.FiltrationStepsTotal.Inc()

		st = Step{K: k, Epsilon: b.eps}
		st.Edges = b.addEdges(k, step)
		if st.Edges > 0 {
			st.Triangles = b.addTriangles()
			if st.Triangles > 0 && b.cloud.Dim() == 3 {
				st.Tetrahedra = b.addTetrahedra()
			}
		}

		if st.Edges > 0 || k == 0 {
			if groups, err = b.homology(ring); err != nil {
				return nil, errors.Wrapf(err, "ε=%g", b.eps)
			}
			next := snapshot(b.eps, groups)
			switch {
			case k == 0:
				current = next
			case !sameHomology(current, next):
				current.End = b.eps
				records = append(records, current)
				metrics.TopologyChangesTotal.Inc()
				b.log.Debug().Float64("eps", b.eps).Ints("ranks", next.Ranks).Msg("homology changed")
				current = next
				st.Changed = true
			}
		}

		b.log.Debug().
			Float64("eps", b.eps).
			Int("edges", st.Edges).
			Int("triangles", st.Triangles).
			Int("tetrahedra", st.Tetrahedra).
			Msg("filtration step")
		b.opts.OnStep(st)
	}
	current.End = b.eps
	records = append(records, current)
	metrics.TopologyChangesTotal.Inc()

	b.log.Info().
		Int("records", len(records)).
		Int("simplices", len(b.raw)).
		Int("edges", b.skel.Edges()).
		Dur("elapsed", time.Since(started)).
		Msg("filtration scan complete")

	return records, nil
}

func (b *Builder) homology(ring simplicial.Ring) ([]homology.Group, error) {
	c, err := simplicial.NewComplex(ring, b.raw)
	if err != nil {
		return nil, err
	}

	return homology.All(c, b.opts.Degrees, b.opts.Parallel)
}

// addEdges inserts every pair {i,j}, i<j, newly within ε, in lexicographic order.
func (b *Builder) addEdges(k int, step float64) int {
	prev := float64(k-1) * step
	added := 0
	for i := 0; i < b.cloud.Len(); i++ {
		for _, nb := range b.opts.Index.Within(i, b.eps) {
			j := nb.Index
			if j <= i {
				continue
			}
			if b.opts.Incremental {
				if k > 0 && nb.Distance <= prev {
					continue
				}
			} else if b.skel.Has(i, j) {
				continue
			}
			b.raw = append(b.raw, simplicial.MustSimplex(i, j))
			b.skel.add(i, j)
			added++
		}
	}
	metrics.SimplicesAddedTotal.WithLabelValues("1").Add(float64(added))

	return added
}

// addTriangles closes every unrecorded 3-clique a0<a1<a2.
func (b *Builder) addTriangles() int {
	n := b.cloud.Len()
	added := 0
	var a0, a1, a2 int
	for a0 = 0; a0 < n; a0++ {
		for a1 = a0 + 1; a1 < n; a1++ {
			if !b.skel.Has(a0, a1) {
				continue
			}
			for a2 = a1 + 1; a2 < n; a2++ {
				if !b.skel.Has(a1, a2) || !b.skel.Has(a0, a2) {
					continue
				}
				key := [3]int{a0, a1, a2}
				if _, seen := b.triangles[key]; seen {
					continue
				}
				b.triangles[key] = struct{}{}
				b.raw = append(b.raw, simplicial.MustSimplex(a0, a1, a2))
				added++
			}
		}
	}
	metrics.SimplicesAddedTotal.WithLabelValues("2").Add(float64(added))

	return added
}

// addTetrahedra closes every unrecorded 4-clique a0<a1<a2<a3.
func (b *Builder) addTetrahedra() int {
	n := b.cloud.Len()
	added := 0
	var a0, a1, a2, a3 int
	for a0 = 0; a0 < n; a0++ {
		for a1 = a0 + 1; a1 < n; a1++ {
			if !b.skel.Has(a0, a1) {
				continue
			}
			for a2 = a1 + 1; a2 < n; a2++ {
				if !b.skel.Has(a1, a2) || !b.skel.Has(a0, a2) {
					continue
				}
				for a3 = a2 + 1; a3 < n; a3++ {
					if !b.skel.Has(a0, a3) || !b.skel.Has(a1, a3) || !b.skel.Has(a2, a3) {
						continue
					}
					key := [4]int{a0, a1, a2, a3}
					if _, seen := b.tetrahedra[key]; seen {
						continue
					}
					b.tetrahedra[key] = struct{}{}
					b.raw = append(b.raw, simplicial.MustSimplex(a0, a1, a2, a3))
					added++
				}
			}
		}
	}
	metrics.SimplicesAddedTotal.WithLabelValues("3").Add(float64(added))

	return added
}

func snapshot(eps float64, groups []homology.Group) Record {
	r := Record{
		Start:    eps,
		Ranks:    make([]int, len(groups)),
		Torsions: make([][]int64, len(groups)),
	}
	for k, g := range groups {
		r.Ranks[k] = g.Rank
		r.Torsions[k] = append([]int64{}, g.Torsion...)
	}

	return r
}

func sameHomology(a, b Record) bool {
	if len(a.Ranks) != len(b.Ranks) {
		return false
	}
	for k := range a.Ranks {
		if !(homology.Group{Rank: a.Ranks[k], Torsion: a.Torsions[k]}).Equal(homology.Group{Rank: b.Ranks[k], Torsion: b.Torsions[k]}) {
			return false
		}
	}

	return true
}
