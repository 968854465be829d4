// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Curve computes κ∥ at np log-spaced temperatures in [Tmin, Tmax]
//  Note: states have ρ = 1 and p = T / (μ KELVIN); tracers are zero
func Curve(mdl Model, env *Env, Tmin, Tmax float64, np int) (T, K []float64, err error) {
	if err = env.Check(); err != nil {
		return
	}
	if np < 2 || !(Tmin > 0) || !(Tmax > Tmin) || math.IsInf(Tmax, 0) {
		return nil, nil, chk.Err("curve requires np >= 2 and 0 < Tmin < Tmax; got np=%d, Tmin=%g, Tmax=%g", np, Tmin, Tmax)
	}
	kelvin := env.Units.Kelvin()
	X := utl.LinSpace(math.Log10(Tmin), math.Log10(Tmax), np)
	T = make([]float64, np)
	K = make([]float64, np)
	v := env.Lay.Alloc()
	for i, x := range X {
		T[i] = math.Pow(10, x)
		env.Lay.Set(v, 1, 1)
		env.Lay.Set(v, 1, T[i]/(env.Gas.Mu(v)*kelvin))
		K[i] = mdl.Calc(v, 0, 0, 0).Kpar
	}
	return
}

// Plot plots κ∥(T) on log-log axes and saves the figure as dirout/fname.png
func Plot(mdl Model, env *Env, dirout, fname string, Tmin, Tmax float64, np int) (err error) {
	T, K, err := Curve(mdl, env, Tmin, Tmax, np)
	if err != nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot plot conductivity curve:\n%v", r)
		}
	}()
	plt.Reset(false, nil)
	plt.Plot(T, K, &plt.A{C: "b", Ls: "-", M: ".", NoClip: true})
	plt.Text(T[0], K[0], io.Sf("(%g, %g)", T[0], K[0]), &plt.A{C: "r", Fsz: 8})
	plt.SetXlog()
	plt.SetYlog()
	plt.Gll("$T\\;[K]$", "$\\kappa_\\parallel$", nil)
	plt.Save(dirout, fname)
	return
}
