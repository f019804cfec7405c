// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package emit writes generated modules to disk.
//
// Every variant owns a disjoint subtree under the output root, so
// variants are generated and written concurrently. A variant that fails
// generation writes nothing; the remaining variants still complete and
// all failures are reported together.
package emit

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/phadej/blaze-svg/generator"
	"github.com/phadej/blaze-svg/internal/logging"
	"github.com/phadej/blaze-svg/model"
)

// Emitter generates variants and writes their files under Root.
type Emitter struct {
	// Root is the output directory. Empty means the config's OutputDir.
	Root string

	// Logger receives progress messages. Nil disables logging.
	Logger *zap.SugaredLogger

	// Concurrency bounds the number of variants processed at once.
	// Zero means GOMAXPROCS.
	Concurrency int
}

// Report summarizes a Run.
type Report struct {
	// Variants lists the variants written successfully, sorted.
	Variants []string

	// Files lists every written file relative to the root, sorted.
	Files []string

	// Failed maps each failing variant to its error.
	Failed map[string]error
}

// Drift is the difference between generated output and the files on disk.
type Drift struct {
	// Changed lists files whose contents differ, relative to the root.
	Changed []string

	// Missing lists files that do not exist.
	Missing []string
}

// Empty reports whether the files on disk are up to date.
func (d *Drift) Empty() bool {
	return len(d.Changed) == 0 && len(d.Missing) == 0
}

// ErrPathConflict is returned when two variants would write the same file.
var ErrPathConflict = errors.New("variants write the same module")

// Run generates every variant and writes the results. The returned error
// joins the failures of all variants; the report is valid either way.
// Nothing is written when two variants share an output path.
func (e *Emitter) Run(ctx context.Context, gen generator.Generator, variants map[string]*model.Variant, cfg generator.Config) (*Report, error) {
	root := e.root(cfg)
	report := &Report{Failed: make(map[string]error)}
	if err := CheckDisjoint(variants, cfg); err != nil {
		return report, err
	}

	var mu sync.Mutex
	err := e.each(ctx, variants, func(name string, v *model.Variant) {
		files, err := e.runVariant(ctx, gen, v, cfg, root)

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			report.Failed[name] = err
			return
		}
		report.Variants = append(report.Variants, name)
		report.Files = append(report.Files, files...)
	})
	if err != nil {
		return report, err
	}

	slices.Sort(report.Variants)
	slices.Sort(report.Files)
	return report, joinFailures(report.Failed)
}

func (e *Emitter) runVariant(ctx context.Context, gen generator.Generator, v *model.Variant, cfg generator.Config, root string) ([]string, error) {
	out, err := gen.Generate(ctx, v, cfg)
	if err != nil {
		e.log().Errorw("Variant failed", "variant", v.Name(), "error", err)
		return nil, err
	}

	files, err := e.WriteOutput(root, out)
	if err != nil {
		return nil, err
	}
	e.log().Debugw("Variant generated", "variant", out.Variant, "files", len(files))
	return files, nil
}

// WriteOutput writes every file of out under root, creating directories
// as needed and overwriting existing files. It returns the written paths.
func (e *Emitter) WriteOutput(root string, out *generator.Output) ([]string, error) {
	paths := out.Paths()
	for _, rel := range paths {
		path := filepath.Join(root, rel)
		e.log().Infof("Generating %s", path)

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create directory for %s", path)
		}
		if err := os.WriteFile(path, out.Files[rel], 0o644); err != nil {
			return nil, errors.Wrapf(err, "failed to write %s", path)
		}
	}
	return paths, nil
}

// Check generates every variant in memory and compares the result with
// the files under the root without writing anything.
func (e *Emitter) Check(ctx context.Context, gen generator.Generator, variants map[string]*model.Variant, cfg generator.Config) (*Drift, error) {
	root := e.root(cfg)
	drift := &Drift{}
	failed := make(map[string]error)
	if err := CheckDisjoint(variants, cfg); err != nil {
		return drift, err
	}

	var mu sync.Mutex
	err := e.each(ctx, variants, func(name string, v *model.Variant) {
		out, err := gen.Generate(ctx, v, cfg)
		if err != nil {
			mu.Lock()
			failed[name] = err
			mu.Unlock()
			return
		}

		for _, rel := range out.Paths() {
			onDisk, err := os.ReadFile(filepath.Join(root, rel))

			mu.Lock()
			switch {
			case errors.Is(err, os.ErrNotExist):
				drift.Missing = append(drift.Missing, rel)
			case err != nil:
				failed[name] = errors.Wrapf(err, "failed to read %s", rel)
			case !bytes.Equal(onDisk, out.Files[rel]):
				drift.Changed = append(drift.Changed, rel)
			}
			mu.Unlock()
		}
	})
	if err != nil {
		return drift, err
	}

	slices.Sort(drift.Changed)
	slices.Sort(drift.Missing)
	return drift, joinFailures(failed)
}

// CheckDisjoint fails when the modules of two variants map to the same
// output path.
func CheckDisjoint(variants map[string]*model.Variant, cfg generator.Config) error {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	slices.Sort(names)

	owner := make(map[string]string, 2*len(names))
	for _, name := range names {
		v := variants[name]
		for _, rel := range []string{cfg.ElementsPath(v), cfg.AttributesPath(v)} {
			key := filepath.ToSlash(rel)
			if prev, ok := owner[key]; ok && prev != name {
				return errors.WithHint(
					errors.Wrapf(ErrPathConflict, "variants %s and %s: %s", prev, name, key),
					"give one of the variants a different version path")
			}
			owner[key] = name
		}
	}
	return nil
}

// each calls fn for every variant with bounded concurrency. fn records
// its own failures so one variant never cancels another.
func (e *Emitter) each(ctx context.Context, variants map[string]*model.Variant, fn func(name string, v *model.Variant)) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit())

	for name, v := range variants {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(name, v)
			return nil
		})
	}
	return g.Wait()
}

func (e *Emitter) root(cfg generator.Config) string {
	if e.Root != "" {
		return e.Root
	}
	return cfg.OutputDir
}

func (e *Emitter) limit() int {
	if e.Concurrency > 0 {
		return e.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

func (e *Emitter) log() *zap.SugaredLogger {
	if e.Logger == nil {
		return logging.Nop()
	}
	return e.Logger
}

// joinFailures joins the failures in variant name order.
func joinFailures(failed map[string]error) error {
	if len(failed) == 0 {
		return nil
	}
	names := make([]string, 0, len(failed))
	for name := range failed {
		names = append(names, name)
	}
	slices.Sort(names)

	errs := make([]error, 0, len(names))
	for _, name := range names {
		err := failed[name]
		// Name errors already carry their variant.
		var ne *generator.NameError
		if !errors.As(err, &ne) {
			err = errors.Wrapf(err, "variant %s", name)
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
