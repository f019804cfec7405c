// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phadej/blaze-svg/generator"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerate_Builtin(t *testing.T) {
	out := filepath.Join(t.TempDir(), "src")

	_, stderr, err := execute(t, "--out", out)
	require.NoError(t, err)

	elements := filepath.Join(out, "Text", "Blaze", "Svg11.hs")
	attributes := filepath.Join(out, "Text", "Blaze", "Svg11", "Attributes.hs")
	assert.FileExists(t, elements)
	assert.FileExists(t, attributes)
	assert.Contains(t, stderr, "Generating "+elements)

	data, err := os.ReadFile(elements)
	require.NoError(t, err)
	src := string(data)
	assert.Contains(t, src, "module Text.Blaze.Svg11\n")
	assert.Contains(t, src, "    , docTypeSvg\n")
	assert.Contains(t, src, `circle = Leaf "circle" "<circle" " />"`)
	assert.Contains(t, src, `text_ = Parent "text" "<text" "</text>"`)
	assert.Contains(t, src, `style = Parent "style" "<style" "</style>" . external`)

	data, err = os.ReadFile(attributes)
	require.NoError(t, err)
	assert.Contains(t, string(data), `xlinkHref = attribute "xlink:href" " xlink:href=\""`)
	assert.Contains(t, string(data), "    , class_\n")
}

func TestGenerate_DefaultOutputDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := execute(t)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "src", "Text", "Blaze", "Svg11.hs"))
}

func TestGenerate_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, filepath.Join(dir, "blazegen.toml"), `output_dir = "`+filepath.ToSlash(filepath.Join(dir, "gen"))+`"
module_prefix = "Text.Markup"
`)

	_, _, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)

	path := filepath.Join(dir, "gen", "Text", "Markup", "Svg11.hs")
	require.FileExists(t, path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "module Text.Markup.Svg11\n")
	assert.Contains(t, string(data), "import Text.Markup.Svg\n")
}

func TestGenerate_ExtraVocabulary(t *testing.T) {
	dir := t.TempDir()
	tiny := writeFile(t, filepath.Join(dir, "tiny.yaml"), `version_path: [Svg11, Tiny]
parents: [svg, g]
leafs: [rect]
attributes: [x, y]
`)
	out := filepath.Join(dir, "src")

	_, _, err := execute(t, "--out", out, "--vocab", tiny)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "Text", "Blaze", "Svg11.hs"))
	assert.FileExists(t, filepath.Join(out, "Text", "Blaze", "Svg11", "Tiny.hs"))
	assert.FileExists(t, filepath.Join(out, "Text", "Blaze", "Svg11", "Tiny", "Attributes.hs"))
}

func TestGenerate_ClashFails(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, filepath.Join(dir, "bad.yaml"), `version_path: [Bad]
parents: [svg]
leafs: [title]
attributes: [title]
`)
	out := filepath.Join(dir, "src")

	_, _, err := execute(t, "--out", out, "--vocab", bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, generator.ErrAmbiguousName))

	name, ok := generator.RejectedName(err)
	require.True(t, ok)
	assert.Equal(t, "title", name)

	var buf bytes.Buffer
	reportError(&buf, err)
	assert.Contains(t, buf.String(), `name "title": name is used as both element and attribute`)

	// The failing variant writes nothing; the built-in one is unaffected.
	assert.NoFileExists(t, filepath.Join(out, "Text", "Blaze", "Bad.hs"))
	assert.FileExists(t, filepath.Join(out, "Text", "Blaze", "Svg11.hs"))
}

func TestGenerate_ReservedIdentifierFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, filepath.Join(dir, "blazegen.toml"), `extra_reserved = ["id"]`+"\n")

	_, _, err := execute(t, "--config", cfgPath, "--out", filepath.Join(dir, "src"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, generator.ErrReservedIdentifier))
	assert.Contains(t, err.Error(), `name "id"`)
}

func TestGenerate_DuplicateVariant(t *testing.T) {
	dir := t.TempDir()
	dup := writeFile(t, filepath.Join(dir, "dup.yaml"), `version_path: [Svg11]
parents: [svg]
attributes: [x]
`)

	_, _, err := execute(t, "--out", filepath.Join(dir, "src"), "--vocab", dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate vocabulary variant")
}

func TestGenerate_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "extra")
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	out := filepath.Join(t.TempDir(), "src")

	stdout, _, err := execute(t, "check", "--out", out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errDrift))
	assert.Contains(t, stdout, "missing: "+filepath.Join("Text", "Blaze", "Svg11.hs"))

	_, _, err = execute(t, "--out", out)
	require.NoError(t, err)

	stdout, _, err = execute(t, "check", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 variants up to date")

	writeFile(t, filepath.Join(out, "Text", "Blaze", "Svg11.hs"), "edited")
	stdout, _, err = execute(t, "check", "--out", out)
	require.Error(t, err)
	assert.Contains(t, stdout, "changed: "+filepath.Join("Text", "Blaze", "Svg11.hs"))

	var buf bytes.Buffer
	reportError(&buf, err)
	assert.Contains(t, buf.String(), "Hint: run blazegen to regenerate")
}

func TestList(t *testing.T) {
	stdout, _, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "VARIANT"))
	assert.Contains(t, lines[1], "Svg11")
	assert.Contains(t, lines[1], "Text.Blaze.Svg11")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "blazegen dev")
	assert.Contains(t, stdout, "generator blaze")
}

func TestBuiltinRegistered(t *testing.T) {
	assert.Contains(t, generator.List(), "Svg11")
}

func TestGenerate_WithoutBuiltin(t *testing.T) {
	dir := t.TempDir()
	tiny := writeFile(t, filepath.Join(dir, "tiny.yaml"), `version_path: [Tiny]
parents: [svg]
attributes: [x]
`)
	out := filepath.Join(dir, "src")

	_, _, err := execute(t, "--out", out, "--builtin=false", "--vocab", tiny)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "Text", "Blaze", "Tiny.hs"))
	assert.NoFileExists(t, filepath.Join(out, "Text", "Blaze", "Svg11.hs"))
}
