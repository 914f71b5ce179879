// Package persistence computes persistent homology of point clouds: it grows
// a Vietoris–Rips filtration under the L1 metric and reports, for every
// scale interval, the homology groups H_0..H_{T−1} of the complex.
//
// 🚀 What is inside?
//
//	• Point clouds: 2-D and 3-D, CSV/JSON input, synthetic samples
//	• Neighbor search: exact kd-tree radius queries (brute force as oracle)
//	• Complexes: simplices, chain groups, boundary operators ∂_n
//	• Linear algebra: dense matrices, Jacobi SVD rank, exact int64 Smith form
//	• Homology: Betti numbers over R, ranks plus torsion over Z
//	• Filtration: ε-scan with change-point records (barcodes)
//	• Output: JSON, Parquet, aligned tables, SQLite run history
//
// Under the hood the work is split into subpackages:
//
//	cloud/       Point, Cloud, L1 distance, CSV/JSON codecs
//	spatial/     Index interface, KDTree, BruteForce
//	matrix/      Dense, IntDense, Mul/Transpose/Eigen, SingularValues, Rank
//	snf/         step-wise Smith normal form reducer
//	simplicial/  Simplex, Complex, Ring, Boundary
//	homology/    Betti, Homology, All
//	rips/        Builder, Analyze, Record, Skeleton
//	samples/     circle, grid, sphere, torus, uniform, Platonic solids
//	barcode/     Document, JSON/Parquet/table writers
//	store/       SQLite persistence of runs
//	logging/     zerolog setup
//	metrics/     Prometheus collectors
//	cmd/ripsbar  command-line front end
//
// Quick ASCII example (unit square, L1):
//
//	0───1      ε<1  : H_0=4
//	│   │      1≤ε<2: H_0=1, H_1=1 (the hole)
//	3───2      ε≥2  : diagonals fill the hole, H_1=0; four triangles
//	                  enclose a void, H_2=1 (3-simplices are 3-D only)
//
//	go get github.com/katalvlaran/lvlath-persistence
package persistence
