// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/phadej/blaze-svg/generator"
	"github.com/phadej/blaze-svg/internal/vocab"
)

func init() {
	// Built-in vocabularies; more variants come from --vocab files.
	for _, v := range vocab.Builtin() {
		generator.Register(v)
	}
}
