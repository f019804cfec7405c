// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/phadej/blaze-svg/generators/blaze"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			md := blaze.NewGenerator().Metadata()
			printf(cmd, "blazegen %s (commit: %s, built: %s)\n", version, commit, date)
			printf(cmd, "generator %s %s: %s\n", md.Name, md.Version, md.Description)
		},
	}
}
