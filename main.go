// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bbw7561135/thermal-wind/inp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// flags shared by all commands
var (
	iniPath string
	verbose bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "thermal-wind",
		Short:         "Thermal conduction coefficients for MHD simulations",
		Long:          `Computes conduction coefficients along and across magnetic field lines and the saturation parameter from run definitions in a pluto.ini-like file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(log.WarnLevel)
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVar(&iniPath, "ini", "pluto.ini", "run definitions file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages")
	root.AddCommand(newEvalCmd(), newTableCmd(), newModelsCmd())
	return root
}

// loadSim reads the definitions file and builds the conduction model
func loadSim() (sim *inp.Sim, err error) {
	sim, err = inp.ReadSim(iniPath)
	if err != nil {
		return
	}
	err = sim.Build()
	return
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("thermal-wind failed")
		os.Exit(1)
	}
}
