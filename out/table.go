// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	goio "io"

	"github.com/bbw7561135/thermal-wind/mdl/conduct"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// WriteTable writes temperatures and coefficients as columns
func WriteTable(w goio.Writer, temps []float64, res []conduct.Coefficients) (err error) {
	if len(temps) != len(res) {
		return chk.Err("number of temperatures (%d) and results (%d) must be equal", len(temps), len(res))
	}
	if _, err = goio.WriteString(w, io.Sf("%14s%14s%14s%8s\n", "T", "kpar", "kperp", "phi")); err != nil {
		return
	}
	for i, r := range res {
		if _, err = goio.WriteString(w, io.Sf("%14.6e%14.6e%14.6e%8.3f\n", temps[i], r.Kpar, r.Kperp, r.Phi)); err != nil {
			return
		}
	}
	return
}
