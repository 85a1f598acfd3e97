/*
Package uniprop provides Unicode character properties and the primitive
normalization operations built on top of them.

# Content

For every Unicode code-point the package answers classification queries in
constant time: general category, block, script, canonical combining class,
bidi class, joining type, and the break classes used by segmentation
(grapheme cluster, word, line), together with a small set of boolean flags
(emoji, extended pictographic, paired bracket, default-ignorable,
variation selector, contributes-to-shaping).

On top of the property records the package implements canonical and
compatibility decomposition, single-step canonical composition (including
the algorithmic Hangul syllable case), bidi bracket pairing, bidi
mirroring, and OpenType script-tag resolution. These are the primitives
which segmenters, bidi resolvers, shapers and normalizers are built from;
the package deliberately implements none of those higher-level algorithms
itself.

# Typical Usage

Clients look up a Properties value for a code-point and read fields off it:

	props := uniprop.Lookup('é')
	if props.Script() == uniprop.Latin { … }

or use the Char convenience type:

	if uniprop.Char('ب').JoiningType() == uniprop.JoiningDual { … }

All tables are embedded at build time and derived from a single Unicode
Character Database release (see Version). Lookups are pure functions over
immutable data and safe for unsynchronized concurrent use.

______________________________________________________________________

# License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package uniprop

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to uniprop .
func tracer() tracing.Trace {
	return tracing.Select("uniprop")
}

//go:generate go run ./internal/generator
