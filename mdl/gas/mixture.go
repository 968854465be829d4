// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"strings"

	"github.com/bbw7561135/thermal-wind/prim"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Mixture implements a two-component gas where the mass fraction of the first
// component is carried by the first passive tracer
//
//   1/μ = tr/μ1 + (1 - tr)/μ2
//
type Mixture struct {
	Mu1, Mu2 float64 // mean molecular weights of each component
	itr      int     // offset of tracer in state vector
}

// add model to factory
func init() {
	allocators["mixture"] = func() Model { return new(Mixture) }
}

// Init initialises this structure
func (o *Mixture) Init(prms dbf.Params, lay *prim.Layout) (err error) {
	if lay == nil || lay.Ntr < 1 {
		return chk.Err("mixture: layout with at least one passive tracer is required\n")
	}
	mu1, mu2 := 1.3, 0.6
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "mu1":
			mu1 = p.V
		case "mu2":
			mu2 = p.V
		default:
			return chk.Err("mixture: parameter named %q is incorrect\n", p.N)
		}
	}
	if !(mu1 > 0) || !(mu2 > 0) {
		return chk.Err("mixture: mu1=%g and mu2=%g must be positive\n", mu1, mu2)
	}
	o.Mu1, o.Mu2, o.itr = mu1, mu2, lay.Trc
	return
}

// GetPrms gets (an example) of parameters
func (o Mixture) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "mu1", V: 1.3},
			&dbf.P{N: "mu2", V: 0.6},
		}
	}
	return dbf.Params{
		&dbf.P{N: "mu1", V: o.Mu1},
		&dbf.P{N: "mu2", V: o.Mu2},
	}
}

// Mu returns μ; the tracer is clipped to [0,1]
func (o Mixture) Mu(v []float64) float64 {
	tr := v[o.itr]
	if tr < 0 {
		tr = 0
	}
	if tr > 1 {
		tr = 1
	}
	return 1.0 / (tr/o.Mu1 + (1.0-tr)/o.Mu2)
}
