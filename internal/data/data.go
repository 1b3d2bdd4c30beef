// Package data embeds the hyphenation pattern sets shipped with this
// module.
//
// Assets are plain-text pattern files, one Liang pattern or exception word
// per line, rather than precompiled automaton binaries: this keeps them
// human-auditable and routes them through the same parser and packer a
// caller's own pattern set goes through. A caller who wants to ship a
// precompiled binary instead can produce one with package serialize and
// load it directly with serialize.Decode.
package data

import "embed"

//go:embed patterns
var FS embed.FS
