// Package densegrid is a small, dependency-light home for a dense
// two-dimensional numeric container.
//
// 🚀 What is densegrid?
//
//	A strict-contract leaf library: build a matrix from rows, ask for its
//	shape, read and write single cells. Nothing more.
//
// ✨ Why choose densegrid?
//
//   - Strict validation – every bad index or argument is a typed sentinel error
//   - No aliasing – inputs and snapshots are always copied row by row
//   - Interop – hand matrices to gonum/mat for the algebra you need
//
// Under the hood:
//
//	matrix/ — Matrix type, constructors, accessors, gonum adapters
//
// Quick ASCII example:
//
//	    [ 1 2 3 ]
//	A = [ 4 5 6 ]    A.Element(2, 0) == 3, A.Element(0, 2) == 7
//	    [ 7 8 9 ]
//
//	go get github.com/katalvlaran/densegrid
package densegrid
