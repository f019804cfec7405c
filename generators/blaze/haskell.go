// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package blaze

import (
	"fmt"
	"strings"
)

// block accumulates the lines of one rendered source block.
type block struct {
	lines []string
}

func (b *block) line(s string) {
	b.lines = append(b.lines, s)
}

func (b *block) linef(format string, args ...any) {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
}

// haddock writes a documentation comment: a summary, an example and the
// markup the example renders to.
func (b *block) haddock(summary, example, result []string) {
	for i, s := range summary {
		if i == 0 {
			b.line("-- | " + s)
		} else {
			b.line("-- " + s)
		}
	}
	b.line("--")
	b.line("-- Example:")
	b.line("--")
	for _, e := range example {
		b.line("-- > " + e)
	}
	b.line("--")
	b.line("-- Result:")
	b.line("--")
	for _, r := range result {
		b.line("-- > " + r)
	}
	b.line("--")
}

// inline writes the INLINE pragma for ident.
func (b *block) inline(ident string) {
	b.linef("{-# INLINE %s #-}", ident)
}

// String returns the block text, newline-terminated.
func (b *block) String() string {
	return strings.Join(b.lines, "\n") + "\n"
}

// haskellString renders s as a Haskell string literal.
func haskellString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '"':
			b.WriteString(`\"`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r >= 0x7f:
			fmt.Fprintf(&b, `\%d`, r)
			// A numeric escape followed by a digit needs the empty escape.
			if i+1 < len(runes) && runes[i+1] >= '0' && runes[i+1] <= '9' {
				b.WriteString(`\&`)
			}
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// spaces returns a run of blanks as wide as s, for aligning continued
// type signatures.
func spaces(s string) string {
	return strings.Repeat(" ", len(s))
}

// exportList renders a module header with its export list:
//
//	module Name
//	    ( a
//	    , b
//	    ) where
func exportList(module string, exports []string) string {
	var b block
	b.line("module " + module)
	for i, e := range exports {
		if i == 0 {
			b.line("    ( " + e)
		} else {
			b.line("    , " + e)
		}
	}
	b.line("    ) where")
	return b.String()
}
