// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"strings"

	"github.com/bbw7561135/thermal-wind/prim"
	"github.com/bbw7561135/thermal-wind/units"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Abundance implements a H, He and metals mixture with given mass fractions
//
//   fHe = (Y/A_He) (A_H/X)     fZ = (Z/A_Z) (A_H/X)     Z = 1 - X - Y
//
//   ionised:  μ = (A_H + fHe A_He + fZ A_Z) / (2 + 3 fHe + (1 + A_Z/2) fZ)
//   neutral:  μ = (A_H + fHe A_He + fZ A_Z) / (1 + fHe + fZ)
//
type Abundance struct {
	X, Y    float64 // mass fractions of hydrogen and helium
	Neutral bool    // neutral gas instead of fully ionised
	val     float64 // μ
}

// add model to factory
func init() {
	allocators["abundance"] = func() Model { return new(Abundance) }
}

// Init initialises this structure
func (o *Abundance) Init(prms dbf.Params, lay *prim.Layout) (err error) {
	x, y, neutral := 0.7110, 0.2741, false
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "x":
			x = p.V
		case "y":
			y = p.V
		case "neutral":
			neutral = p.V > 0
		default:
			return chk.Err("abundance: parameter named %q is incorrect\n", p.N)
		}
	}
	z := 1.0 - x - y
	if x <= 0 || y < 0 || z < 0 {
		return chk.Err("abundance: mass fractions X=%g and Y=%g are invalid\n", x, y)
	}
	fHe := y / units.CONST_AHe * units.CONST_AH / x
	fZ := z / units.CONST_AZ * units.CONST_AH / x
	num := units.CONST_AH + fHe*units.CONST_AHe + fZ*units.CONST_AZ
	o.X, o.Y, o.Neutral = x, y, neutral
	if neutral {
		o.val = num / (1.0 + fHe + fZ)
		return
	}
	o.val = num / (2.0 + 3.0*fHe + (1.0+0.5*units.CONST_AZ)*fZ)
	return
}

// GetPrms gets (an example) of parameters
func (o Abundance) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "X", V: 0.7110},
			&dbf.P{N: "Y", V: 0.2741},
			&dbf.P{N: "neutral", V: 0},
		}
	}
	var neutral float64
	if o.Neutral {
		neutral = 1
	}
	return dbf.Params{
		&dbf.P{N: "X", V: o.X},
		&dbf.P{N: "Y", V: o.Y},
		&dbf.P{N: "neutral", V: neutral},
	}
}

// Mu returns μ
func (o Abundance) Mu(v []float64) float64 {
	return o.val
}
