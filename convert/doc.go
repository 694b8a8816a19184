// Package convert provides two-way adapters between sparse.Matrix and the
// dense matrices of gonum.org/v1/gonum/mat.
//
// Use convert to hand a sparse result to gonum's factorizations and solvers,
// or to bring an integral dense matrix back into sparse form.
package convert
