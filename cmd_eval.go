// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var rho, prs float64
	var tracers []float64
	var x [3]float64
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Compute coefficients for one cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := loadSim()
			if err != nil {
				return err
			}
			v := sim.Lay.Alloc()
			sim.Lay.Set(v, rho, prs, tracers...)
			res := sim.Model.Calc(v, x[0], x[1], x[2])
			fmt.Fprint(cmd.OutOrStdout(), io.ArgsTable("CONDUCTION COEFFICIENTS",
				"temperature [K]", "T", sim.Env.Temperature(v),
				"parallel coefficient", "kpar", res.Kpar,
				"perpendicular coefficient", "kperp", res.Kperp,
				"saturation parameter", "phi", res.Phi,
			))
			return nil
		},
	}
	cmd.Flags().Float64Var(&rho, "rho", 1, "density [code units]")
	cmd.Flags().Float64Var(&prs, "prs", 1, "pressure [code units]")
	cmd.Flags().Float64SliceVar(&tracers, "tr", nil, "passive tracers")
	cmd.Flags().Float64Var(&x[0], "x1", 0, "coordinate x1")
	cmd.Flags().Float64Var(&x[1], "x2", 0, "coordinate x2")
	cmd.Flags().Float64Var(&x[2], "x3", 0, "coordinate x3")
	return cmd
}
