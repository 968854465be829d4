// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Constant implements a conductivity independent of temperature
//
//   κ∥ = κ0 mp μ / (UNIT_DENSITY UNIT_VELOCITY UNIT_LENGTH kB)
//
type Constant struct {
	Kappa float64 // κ0 [cgs]
	Phi   float64 // saturation parameter
	env   Env
}

// add model to factory
func init() {
	allocators["constant"] = func() Model { return new(Constant) }
}

// Init initialises this structure
func (o *Constant) Init(prms dbf.Params, env *Env) (err error) {
	if err = env.Check(); err != nil {
		return
	}
	p := prms.Find("kappa")
	if p == nil {
		return chk.Err("constant: 'kappa' must be given in database of parameters\n")
	}
	kappa, phi := p.V, PhiDefault
	if p = prms.Find("phi"); p != nil {
		phi = p.V
	}
	o.Kappa, o.Phi = kappa, phi
	o.env = *env
	return
}

// GetPrms gets (an example) of parameters
func (o Constant) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "kappa", V: 1e6},
			&dbf.P{N: "phi", V: PhiDefault},
		}
	}
	return dbf.Params{
		&dbf.P{N: "kappa", V: o.Kappa},
		&dbf.P{N: "phi", V: o.Phi},
	}
}

// Calc computes κ∥, κ⊥ and φ
func (o *Constant) Calc(v []float64, x1, x2, x3 float64) (res Coefficients) {
	res.Kpar = o.Kappa * o.env.Units.CodeScale(o.env.Gas.Mu(v))
	res.Kperp = o.env.Phys.Kperp(res.Kpar)
	res.Phi = o.Phi
	return
}
