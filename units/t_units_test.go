// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_units01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("units01")

	u := Default()
	if err := u.Check(); err != nil {
		tst.Errorf("default units must be valid: %v\n", err)
		return
	}

	// KELVIN for 1 km/s ≈ 120.27 K
	chk.Float64(tst, "kelvin", 1e-10, u.Kelvin(), 1e10*CONST_amu/CONST_kB)
	chk.Float64(tst, "kelvin approx", 1e-2, u.Kelvin(), 120.27)

	mu := 0.6
	chk.Float64(tst, "scale", 1e-15, u.CodeScale(mu), CONST_mp*mu/(CONST_mp*1e5*CONST_au*CONST_kB))
	chk.Float64(tst, "time", 1e-15, u.Time()/1e8, CONST_au/1e5/1e8)
	chk.Float64(tst, "pressure", 1e-15, u.Pressure()/(CONST_mp*1e5*1e5), 1)
}

func Test_units02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("units02")

	u := Unity()
	chk.Float64(tst, "kelvin", 1e-15, u.Kelvin(), 1)
	chk.Float64(tst, "scale", 1e-15, u.CodeScale(2), 2)

	bad := []*Units{
		{0, 1, 1, 1, 1, 1},
		{1, -1, 1, 1, 1, 1},
		{1, 1, math.Inf(1), 1, 1, 1},
		{1, 1, 1, math.NaN(), 1, 1},
		{1, 1, 1, 1, 0, 1},
		{1, 1, 1, 1, 1, -2},
	}
	for i, b := range bad {
		if err := b.Check(); err == nil {
			tst.Errorf("Check should have failed for case %d\n", i)
			return
		}
	}
}
