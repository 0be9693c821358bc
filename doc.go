// Package parmatrix is a dense, row-major float64 matrix library whose
// arithmetic is split across goroutines by contiguous row ranges.
//
// What is inside?
//
//	• matrix/   : Dense storage, checked At/Set, Mul/Add/Sub/Hadamard/Scale/Transpose,
//	              Engine for pooled execution
//	• parallel/ : row partitioning, spawn-and-join Apply, reusable Pool
//	• store/    : memory-mapped snapshot files for Dense
//
// Guarantees:
//
//   - Shapes are validated before any goroutine starts; a mismatch returns an
//     error and never a partial result.
//   - Operands are read-only; every result owns a fresh buffer.
//   - Results do not depend on the number of workers.
//
// Quick example:
//
//	A, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	B, _ := matrix.NewFromRows([][]float64{{5, 6}, {7, 8}})
//	C, _ := matrix.Mul(A, B) // [[19 22] [43 50]]
//
//	go get github.com/katalvlaran/parmatrix
package parmatrix
