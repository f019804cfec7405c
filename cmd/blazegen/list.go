// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List vocabulary variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.load(cmd)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "VARIANT\tMODULE\tELEMENTS\tATTRIBUTES\n")
			for _, name := range slices.Sorted(maps.Keys(env.variants)) {
				v := env.variants[name]
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n",
					name, env.cfg.ModuleName(v), len(v.Elements()), len(v.SortedAttributes()))
			}
			return nil
		},
	}
}
