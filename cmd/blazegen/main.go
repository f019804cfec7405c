// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command blazegen generates blaze combinator modules from markup
// vocabulary tables.
//
// Usage:
//
//	blazegen [flags]
//	blazegen check [flags]
//	blazegen list
//	blazegen version
//
// Flags:
//
//	-c, --config     Path to blazegen.toml (default: ./blazegen.toml if present)
//	    --vocab      Extra YAML vocabulary files (repeatable)
//	-o, --out        Output directory (default: src)
//	    --builtin    Include the built-in vocabularies (default: true)
//	-v, --verbose    Debug logging
//	    --json-logs  Structured JSON logs
//
// Running without a subcommand regenerates every variant. Generation
// stops with a non-zero exit status when any name clashes, after
// printing the offending raw name and the rule it broke.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err and any hints attached to it.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}
