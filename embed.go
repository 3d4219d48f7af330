// Package unitgrader holds project level files embedded into the binary.
package unitgrader

import _ "embed"

// About is the raw project metadata file.
//
//go:embed about.toml
var About []byte
