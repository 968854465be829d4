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

// Constant implements a gas with fixed mean molecular weight
type Constant struct {
	Val float64 // μ
}

// add model to factory
func init() {
	allocators["constant"] = func() Model { return new(Constant) }
}

// Init initialises this structure
func (o *Constant) Init(prms dbf.Params, lay *prim.Layout) (err error) {
	val := 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "mu":
			val = p.V
		default:
			return chk.Err("constant: parameter named %q is incorrect\n", p.N)
		}
	}
	if !(val > 0) {
		return chk.Err("constant: mu must be positive; %g is invalid\n", val)
	}
	o.Val = val
	return
}

// GetPrms gets (an example) of parameters
func (o Constant) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "mu", V: 0.6},
		}
	}
	return dbf.Params{
		&dbf.P{N: "mu", V: o.Val},
	}
}

// Mu returns μ
func (o Constant) Mu(v []float64) float64 {
	return o.Val
}
