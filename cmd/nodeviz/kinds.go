// Copyright (c) 2026, The nodeviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subsurface-viz/nodeviz/subsurface"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "Print the node kinds that can be shown in each target kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-14s %s\n", "NODE", "TARGET")
			for _, r := range subsurface.NewFactory().Registrations() {
				fmt.Fprintf(w, "%-14s %s\n", r.NodeKind, r.TargetKind)
			}
			return nil
		},
	}
}
