// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the evaluation of conduction models over many cells and
// the output of results
package out

import (
	"context"
	"math"

	"github.com/bbw7561135/thermal-wind/mdl/conduct"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"golang.org/x/sync/errgroup"
)

// checkEvery is the number of cells between checks for cancellation
const checkEvery = 1024

// Cell holds the primitive state and position of one cell
type Cell struct {
	V []float64  // primitive variables
	X [3]float64 // coordinates
}

// Sweep computes the coefficients of all cells using up to ncpu goroutines.
// Results are in the same order as cells.
func Sweep(ctx context.Context, mdl conduct.Model, cells []Cell, ncpu int) (res []conduct.Coefficients, err error) {
	if mdl == nil {
		return nil, chk.Err("conduction model is required")
	}
	if ncpu < 1 {
		ncpu = 1
	}
	res = make([]conduct.Coefficients, len(cells))
	if len(cells) == 0 {
		return
	}
	size := (len(cells) + ncpu - 1) / ncpu
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(ncpu)
	for start := 0; start < len(cells); start += size {
		end := utl.Imin(start+size, len(cells))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if (i-start)%checkEvery == 0 {
					if e := ctx.Err(); e != nil {
						return e
					}
				}
				c := cells[i]
				res[i] = mdl.Calc(c.V, c.X[0], c.X[1], c.X[2])
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return
}

// LogSpace returns n values logarithmically spaced in [a, b]; a and b must be positive
func LogSpace(a, b float64, n int) (X []float64) {
	X = utl.LinSpace(math.Log10(a), math.Log10(b), n)
	for i, x := range X {
		X[i] = math.Pow(10, x)
	}
	if n > 1 {
		X[0], X[n-1] = a, b
	}
	return
}
