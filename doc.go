// SPDX-License-Identifier: MIT

// Package alexdata computes the Alexander polynomial and the Alexander data
// of braid kernels: braids whose lower n-2k positions loop back on
// themselves and whose top 2k positions are closed by caps.
//
// What is inside?
//
//	poly/      exact Laurent polynomials over big.Rat in named indeterminates
//	matrix/    dense matrices of polynomials: Mul, Sub, Induced, exact Det
//	braid/     braid words, kernels, strand tracking, closure classes
//	alexander/ coloured Burau matrix, Alexander polynomial, U/V and table
//	builder/   deterministic braid-word constructors (twists, torus, plait)
//	batch/     bounded concurrent evaluation of many kernels
//	config/    YAML job files with environment overrides
//	cmd/       the alexdata CLI
//
// Quick example:
//
//	k, _ := braid.NewKernel(5, 1, 3, 2, 2, -4, -1, -1, -2, -3, -4)
//	res, _ := alexander.Compute(k)
//	fmt.Println(res.Polynomial)
//	fmt.Println(res.Data.U, res.Data.V)
//
// Everything is exact: there is no floating point between the braid word
// and the coefficient table.
//
//	go get github.com/katalvlaran/alexdata
package alexdata
