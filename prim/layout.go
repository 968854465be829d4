// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prim implements the layout of primitive variables in a cell
package prim

import "github.com/cpmech/gosl/chk"

// physics modules
const (
	HD  = "hd"  // hydrodynamics
	MHD = "mhd" // magnetohydrodynamics
)

// Layout holds the offsets of named primitive variables in the state vector
//  Note: offsets of absent variables are -1
type Layout struct {
	Physics string // physics module; e.g. "mhd"
	Rho     int    // density
	Vx1     int    // velocity components
	Vx2     int
	Vx3     int
	Bx1     int // magnetic field components
	Bx2     int
	Bx3     int
	Prs     int // thermal pressure
	Trc     int // first passive tracer
	Ntr     int // number of tracers
	Nvar    int // total number of variables
}

// NewLayout returns the layout for a physics module with ntracers passive scalars
//  ordering: RHO, VX1, VX2, VX3, [BX1, BX2, BX3], PRS, [TRC...]
func NewLayout(physics string, ntracers int) (o *Layout, err error) {
	if ntracers < 0 {
		return nil, chk.Err("number of tracers must be non-negative; %d is invalid", ntracers)
	}
	o = &Layout{Physics: physics, Rho: 0, Vx1: 1, Vx2: 2, Vx3: 3, Bx1: -1, Bx2: -1, Bx3: -1, Trc: -1}
	n := 4
	switch physics {
	case HD:
	case MHD:
		o.Bx1, o.Bx2, o.Bx3 = n, n+1, n+2
		n += 3
	default:
		return nil, chk.Err("physics module %q is not available; options are %q and %q", physics, HD, MHD)
	}
	o.Prs = n
	n++
	if ntracers > 0 {
		o.Trc = n
		n += ntracers
	}
	o.Ntr = ntracers
	o.Nvar = n
	return
}

// HasField tells whether the state vector carries magnetic field components
func (o Layout) HasField() bool {
	return o.Bx1 >= 0
}

// Alloc allocates a zeroed state vector
func (o Layout) Alloc() []float64 {
	return make([]float64, o.Nvar)
}

// Check checks the length of a state vector
func (o Layout) Check(v []float64) (err error) {
	if len(v) != o.Nvar {
		return chk.Err("state vector must have %d components (%s); %d is incorrect", o.Nvar, o.Physics, len(v))
	}
	return
}

// Density returns ρ
func (o Layout) Density(v []float64) float64 {
	return v[o.Rho]
}

// Pressure returns p
func (o Layout) Pressure(v []float64) float64 {
	return v[o.Prs]
}

// Tracer returns the i-th passive tracer
func (o Layout) Tracer(v []float64, i int) float64 {
	return v[o.Trc+i]
}

// Bmag2 returns |B|²; zero without magnetic field
func (o Layout) Bmag2(v []float64) float64 {
	if !o.HasField() {
		return 0
	}
	return v[o.Bx1]*v[o.Bx1] + v[o.Bx2]*v[o.Bx2] + v[o.Bx3]*v[o.Bx3]
}

// Set sets density, pressure and (optionally) tracers; other entries are left untouched
func (o Layout) Set(v []float64, rho, prs float64, tracers ...float64) {
	v[o.Rho] = rho
	v[o.Prs] = prs
	for i := 0; i < len(tracers) && i < o.Ntr; i++ {
		v[o.Trc+i] = tracers[i]
	}
}
