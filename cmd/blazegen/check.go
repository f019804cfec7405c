// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/phadej/blaze-svg/generators/blaze"
	"github.com/phadej/blaze-svg/internal/emit"
)

// errDrift is returned by check when the output directory is stale.
var errDrift = errors.New("generated files are out of date")

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify generated modules are up to date",
		Long: `Regenerate every variant in memory and compare the result with the
files in the output directory. Nothing is written. Exits non-zero when a
file is missing or differs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := opts.load(cmd)
			if err != nil {
				return err
			}

			e := &emit.Emitter{Logger: env.log}
			drift, err := e.Check(cmd.Context(), blaze.NewGenerator(), env.variants, env.cfg)
			if err != nil {
				return err
			}

			for _, p := range drift.Missing {
				printf(cmd, "missing: %s\n", p)
			}
			for _, p := range drift.Changed {
				printf(cmd, "changed: %s\n", p)
			}
			if !drift.Empty() {
				return errors.WithHint(errDrift, "run blazegen to regenerate")
			}
			printf(cmd, "%d variants up to date\n", len(env.variants))
			return nil
		},
	}
}
