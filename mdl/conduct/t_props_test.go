// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"
	"testing"

	"github.com/bbw7561135/thermal-wind/prim"
	"github.com/bbw7561135/thermal-wind/units"
	"github.com/cpmech/gosl/chk"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func Test_props01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("props01")

	u := units.Default()
	mu := 0.6
	ttr := 1e5
	env := newEnv(tst, prim.MHD, u, mu)
	mdl := newSpitzer(tst, env, 5.6e-7, ttr)
	lay := env.Lay

	// pressure giving T = Ttr for ρ = 1
	pfloor := ttr / (mu * u.Kelvin())
	vf := lay.Alloc()
	lay.Set(vf, 1, 0.5*pfloor)
	kfloor := mdl.Calc(vf, 0, 0, 0).Kpar

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("κ∥ is constant below the transition temperature", prop.ForAll(
		func(frac float64) bool {
			v := lay.Alloc()
			lay.Set(v, 1, frac*pfloor)
			return mdl.Calc(v, 0, 0, 0).Kpar == kfloor
		},
		gen.Float64Range(-1, 0.999),
	))

	properties.Property("κ∥ strictly increases with pressure above the floor", prop.ForAll(
		func(frac, dp float64) bool {
			v1, v2 := lay.Alloc(), lay.Alloc()
			p1 := frac * pfloor
			lay.Set(v1, 1, p1)
			lay.Set(v2, 1, p1*(1+dp))
			return mdl.Calc(v2, 0, 0, 0).Kpar > mdl.Calc(v1, 0, 0, 0).Kpar
		},
		gen.Float64Range(1.001, 1e3),
		gen.Float64Range(1e-6, 10),
	))

	properties.Property("κ⊥ is zero and φ is 0.3 for any state", prop.ForAll(
		func(rho, prs, b, x1 float64) bool {
			v := lay.Alloc()
			lay.Set(v, rho, prs)
			v[lay.Bx1], v[lay.Bx2], v[lay.Bx3] = b, -b, 0.5*b
			res := mdl.Calc(v, x1, -x1, 2*x1)
			return res.Kperp == 0 && res.Phi == 0.3
		},
		gen.Float64Range(1e-6, 1e6),
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e3, 1e3),
		gen.Float64Range(-1e12, 1e12),
	))

	properties.Property("code units scaling factor", prop.ForAll(
		func(rho, frac float64) bool {
			v := lay.Alloc()
			lay.Set(v, rho, rho*frac*pfloor)
			T := env.Temperature(v)
			if T < ttr {
				T = ttr
			}
			raw := 5.6e-7 * T * T * math.Sqrt(T)
			return mdl.Calc(v, 0, 0, 0).Kpar == raw*u.CodeScale(mu)
		},
		gen.Float64Range(1e-3, 1e3),
		gen.Float64Range(0, 1e3),
	))

	properties.TestingRun(tst)
}
