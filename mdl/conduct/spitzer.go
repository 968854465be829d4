// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Spitzer implements Spitzer's conductivity with a temperature floor
//
//   T  = max(p/ρ μ KELVIN, Ttr)
//
//   κ∥ = κ0 T^(5/2) mp μ / (UNIT_DENSITY UNIT_VELOCITY UNIT_LENGTH kB)
//
type Spitzer struct {

	// parameters
	Kappa float64 // κ0 normalisation constant [cgs]
	Ttr   float64 // transition temperature [K]
	Phi   float64 // saturation parameter

	// collaborators
	env    Env
	rho    int     // offset of density
	prs    int     // offset of pressure
	kelvin float64 // KELVIN
}

// add model to factory
func init() {
	allocators["spitzer"] = func() Model { return new(Spitzer) }
}

// Init initialises this structure
func (o *Spitzer) Init(prms dbf.Params, env *Env) (err error) {
	if err = env.Check(); err != nil {
		return
	}
	kappa, ttr, phi := 0.0, 0.0, PhiDefault
	var found [2]bool
	for _, p := range prms {
		switch p.N {
		case "kappa":
			kappa, found[0] = p.V, true
		case "transition_temperature":
			ttr, found[1] = p.V, true
		case "phi":
			phi = p.V
		default:
			return chk.Err("spitzer: parameter named %q is incorrect\n", p.N)
		}
	}
	if !found[0] || !found[1] {
		return chk.Err("spitzer: both 'kappa' and 'transition_temperature' must be given in database of parameters\n")
	}
	o.Kappa, o.Ttr, o.Phi = kappa, ttr, phi
	o.env = *env
	o.rho, o.prs = env.Lay.Rho, env.Lay.Prs
	o.kelvin = env.Units.Kelvin()
	return
}

// GetPrms gets (an example) of parameters
func (o Spitzer) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "kappa", V: 5.6e-7},                // [erg/(s cm K^(7/2))]
			&dbf.P{N: "transition_temperature", V: 1e5}, // [K]
			&dbf.P{N: "phi", V: PhiDefault},              // [-]
		}
	}
	return dbf.Params{
		&dbf.P{N: "kappa", V: o.Kappa},
		&dbf.P{N: "transition_temperature", V: o.Ttr},
		&dbf.P{N: "phi", V: o.Phi},
	}
}

// Calc computes κ∥, κ⊥ and φ
//  Note: positions are not used; ρ = 0 gives non-finite coefficients
func (o *Spitzer) Calc(v []float64, x1, x2, x3 float64) (res Coefficients) {
	mu := o.env.Gas.Mu(v)
	T := v[o.prs] / v[o.rho] * mu * o.kelvin
	if T < o.Ttr {
		T = o.Ttr
	}
	kpar := o.Kappa * T * T * math.Sqrt(T)
	res.Kpar = kpar * o.env.Units.CodeScale(mu)
	res.Kperp = o.env.Phys.Kperp(res.Kpar)
	res.Phi = o.Phi
	return
}
