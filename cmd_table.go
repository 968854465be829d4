// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"runtime"

	"github.com/bbw7561135/thermal-wind/mdl/conduct"
	"github.com/bbw7561135/thermal-wind/out"
	"github.com/cpmech/gosl/chk"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	var rho, pmin, pmax float64
	var np, ncpu int
	var plotdir string
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Tabulate coefficients over a range of pressures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if np < 2 || !(pmin > 0) || !(pmax > pmin) {
				return chk.Err("table requires np >= 2 and 0 < pmin < pmax; got np=%d, pmin=%g, pmax=%g", np, pmin, pmax)
			}
			sim, err := loadSim()
			if err != nil {
				return err
			}
			P := out.LogSpace(pmin, pmax, np)
			cells := make([]out.Cell, np)
			temps := make([]float64, np)
			for i, p := range P {
				cells[i].V = sim.Lay.Alloc()
				sim.Lay.Set(cells[i].V, rho, p)
				temps[i] = sim.Env.Temperature(cells[i].V)
			}
			log.WithFields(log.Fields{"np": np, "ncpu": ncpu}).Debug("sweep started")
			res, err := out.Sweep(cmd.Context(), sim.Model, cells, ncpu)
			if err != nil {
				return err
			}
			if err = out.WriteTable(cmd.OutOrStdout(), temps, res); err != nil {
				return err
			}
			if plotdir == "" {
				return nil
			}
			return conduct.Plot(sim.Model, sim.Env, plotdir, sim.Key+"_kpar", temps[0], temps[np-1], np)
		},
	}
	cmd.Flags().Float64Var(&rho, "rho", 1, "density [code units]")
	cmd.Flags().Float64Var(&pmin, "pmin", 1e-4, "minimum pressure [code units]")
	cmd.Flags().Float64Var(&pmax, "pmax", 1e2, "maximum pressure [code units]")
	cmd.Flags().IntVar(&np, "np", 21, "number of points")
	cmd.Flags().IntVar(&ncpu, "ncpu", runtime.NumCPU(), "number of goroutines")
	cmd.Flags().StringVar(&plotdir, "plot", "", "directory to save a log-log figure of κ∥(T); requires python with matplotlib")
	return cmd
}
