// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/bbw7561135/thermal-wind/mdl/conduct"
	"github.com/bbw7561135/thermal-wind/mdl/gas"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available models",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), io.Sf("conduct: %s\n", strings.Join(conduct.Names(), " ")))
			fmt.Fprint(cmd.OutOrStdout(), io.Sf("gas:     %s\n", strings.Join(gas.Names(), " ")))
			fmt.Fprint(cmd.OutOrStdout(), io.Sf("physics: %s\n", strings.Join(conduct.PhysicsNames(), " ")))
		},
	}
}
