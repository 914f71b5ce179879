// SPDX-License-Identifier: MIT

package rips

// Skeleton is the symmetric n×n adjacency of the filtration's 1-skeleton,
// stored flat. Entries only ever go from false to true during a scan.
type Skeleton struct {
	n     int
	adj   []bool
	edges int
}

func newSkeleton(n int) *Skeleton {
	return &Skeleton{n: n, adj: make([]bool, n*n)}
}

// Len is the number of vertices.
func (s *Skeleton) Len() int { return s.n }

// Edges is the number of undirected edges.
func (s *Skeleton) Edges() int { return s.edges }

// Has reports whether {i,j} is an edge. Out-of-range indices report false.
func (s *Skeleton) Has(i, j int) bool {
	if i < 0 || j < 0 || i >= s.n || j >= s.n {
		return false
	}

	return s.adj[i*s.n+j]
}

func (s *Skeleton) add(i, j int) {
	if s.adj[i*s.n+j] {
		return
	}
	s.adj[i*s.n+j] = true
	s.adj[j*s.n+i] = true
	s.edges++
}

// Clone returns an independent copy.
func (s *Skeleton) Clone() *Skeleton {
	c := &Skeleton{n: s.n, adj: make([]bool, len(s.adj)), edges: s.edges}
	copy(c.adj, s.adj)

	return c
}

// Subset reports whether every edge of s is an edge of o.
func (s *Skeleton) Subset(o *Skeleton) bool {
	if s.n != o.n {
		return false
	}
	for k, v := range s.adj {
		if v && !o.adj[k] {
			return false
		}
	}

	return true
}

// Components counts connected components with a breadth-first walk; it
// equals b_0 of every complex built on this skeleton.
func (s *Skeleton) Components() int {
	visited := make([]bool, s.n)
	queue := make([]int, 0, s.n)
	count := 0
	var v, w int
	for root := 0; root < s.n; root++ {
		if visited[root] {
			continue
		}
		count++
		visited[root] = true
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			v, queue = queue[0], queue[1:]
			for w = 0; w < s.n; w++ {
				if s.adj[v*s.n+w] && !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}
	}

	return count
}
