// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phadej/blaze-svg/generator"
	"github.com/phadej/blaze-svg/generators/blaze"
	"github.com/phadej/blaze-svg/internal/config"
	"github.com/phadej/blaze-svg/internal/emit"
	"github.com/phadej/blaze-svg/internal/logging"
	"github.com/phadej/blaze-svg/internal/vocab"
	"github.com/phadej/blaze-svg/model"
)

// options holds the flags shared by every command.
type options struct {
	configPath string
	vocab      []string
	builtin    bool
	out        string
	verbose    bool
	jsonLogs   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "blazegen",
		Short: "Generate blaze combinator modules from vocabulary tables",
		Long: `Generate Haskell element and attribute combinator modules for the blaze
markup runtime.

Every variant yields two modules under the output directory, for example
src/Text/Blaze/Svg11.hs and src/Text/Blaze/Svg11/Attributes.hs. Each run
is a full regeneration; the output for a given vocabulary is byte-stable.

Examples:
  blazegen                          # Regenerate built-in variants into src/
  blazegen --out gen/               # Write somewhere else
  blazegen --vocab tiny.yaml        # Add a vocabulary from YAML
  blazegen check                    # Fail when src/ is out of date`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to "+config.FileName+" (default: ./"+config.FileName+" if present)")
	flags.StringSliceVar(&opts.vocab, "vocab", nil, "Extra YAML vocabulary files")
	flags.BoolVar(&opts.builtin, "builtin", true, "Include the built-in vocabularies")
	flags.StringVarP(&opts.out, "out", "o", "", "Output directory (overrides output_dir)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&opts.jsonLogs, "json-logs", false, "Emit structured JSON logs")

	cmd.AddCommand(
		newCheckCmd(opts),
		newListCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *options) error {
	env, err := opts.load(cmd)
	if err != nil {
		return err
	}

	e := &emit.Emitter{Logger: env.log}
	report, err := e.Run(cmd.Context(), blaze.NewGenerator(), env.variants, env.cfg)
	if err != nil {
		return err
	}

	env.log.Infow("Done", "variants", len(report.Variants), "files", len(report.Files), "output", env.cfg.OutputDir)
	return nil
}

// env is everything a command needs after flags and config are applied.
type env struct {
	cfg      generator.Config
	variants map[string]*model.Variant
	log      *zap.SugaredLogger
}

func (o *options) load(cmd *cobra.Command) (*env, error) {
	log := logging.New(cmd.ErrOrStderr(), logging.Options{Verbose: o.verbose, JSON: o.jsonLogs})

	settings, err := config.LoadOptional(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.out != "" {
		settings.Generator.OutputDir = o.out
	}

	variants, err := o.variants(settings)
	if err != nil {
		return nil, err
	}
	log.Debugw("Loaded configuration", "output", settings.Generator.OutputDir, "variants", len(variants))

	return &env{cfg: settings.Generator, variants: variants, log: log}, nil
}

// variants merges the registered built-in variants with the vocabulary
// files named in the config and on the command line.
func (o *options) variants(settings *config.Settings) (map[string]*model.Variant, error) {
	var all []*model.Variant
	if o.builtin {
		for _, name := range generator.List() {
			if v, ok := generator.Get(name); ok {
				all = append(all, v)
			}
		}
	}

	extra, err := vocab.LoadFiles(slices.Concat(settings.Vocabularies, o.vocab))
	if err != nil {
		return nil, err
	}
	return vocab.Set(append(all, extra...)...)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
