// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conduct implements models for thermal conduction coefficients along
// and across magnetic field lines
package conduct

import (
	"sort"

	"github.com/bbw7561135/thermal-wind/mdl/gas"
	"github.com/bbw7561135/thermal-wind/prim"
	"github.com/bbw7561135/thermal-wind/units"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// PhiDefault is the default saturation parameter
const PhiDefault = 0.3

// Coefficients holds the output of a conduction model in code units
type Coefficients struct {
	Kpar  float64 // κ∥ along magnetic field lines
	Kperp float64 // κ⊥ across magnetic field lines
	Phi   float64 // φ controlling the saturated flux F_sat = 5 φ ρ c_iso³
}

// Model defines thermal conduction models
//  Note: Calc must not modify the model; it may be called concurrently
type Model interface {
	Init(prms dbf.Params, env *Env) error              // Init initialises this structure
	GetPrms(example bool) dbf.Params                   // gets (an example) of parameters
	Calc(v []float64, x1, x2, x3 float64) Coefficients // Calc computes κ∥, κ⊥ and φ
}

// Env holds the collaborators of conduction models
type Env struct {
	Lay   *prim.Layout // layout of primitive variables
	Units *units.Units // unit system
	Gas   gas.Model    // mean molecular weight
	Phys  Physics      // physics module; computes κ⊥
}

// NewEnv returns a new Env; the physics module is selected from the layout
func NewEnv(lay *prim.Layout, u *units.Units, g gas.Model) (o *Env, err error) {
	if lay == nil {
		return nil, chk.Err("layout of primitive variables is required")
	}
	phys, err := NewPhysics(lay.Physics)
	if err != nil {
		return
	}
	o = &Env{lay, u, g, phys}
	err = o.Check()
	return
}

// Check checks that all collaborators are available
func (o *Env) Check() (err error) {
	if o == nil {
		return chk.Err("environment of conduction model is missing")
	}
	if o.Lay == nil {
		return chk.Err("layout of primitive variables is missing")
	}
	if o.Units == nil {
		return chk.Err("unit system is missing")
	}
	if o.Gas == nil {
		return chk.Err("mean molecular weight model is missing")
	}
	if o.Phys == nil {
		return chk.Err("physics module is missing")
	}
	return o.Units.Check()
}

// Temperature returns T = p/ρ μ KELVIN [K]
func (o *Env) Temperature(v []float64) float64 {
	return v[o.Lay.Prs] / v[o.Lay.Rho] * o.Gas.Mu(v) * o.Units.Kelvin()
}

// New conduction model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'conduct' database", name)
	}
	return allocator(), nil
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}
