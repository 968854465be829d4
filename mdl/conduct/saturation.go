// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import "math"

// SatFlux computes the saturated heat flux (code units)
//
//   F_sat = 5 φ ρ c_iso³    c_iso = sqrt(p/ρ)
//
func SatFlux(phi, rho, prs float64) float64 {
	ciso := math.Sqrt(prs / rho)
	return 5.0 * phi * rho * ciso * ciso * ciso
}

// Limit limits the classical flux fc by the saturated flux fsat (harmonic mean)
//
//   F = fc fsat / (fsat + |fc|)
//
//  Note: a zero classical flux gives zero for any fsat
func Limit(fc, fsat float64) float64 {
	if fc == 0 {
		return 0
	}
	if math.IsInf(fsat, 1) {
		return fc
	}
	return fc * fsat / (fsat + math.Abs(fc))
}
