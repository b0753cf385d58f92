// Package embed holds the web UI assets compiled into the binary.
package embed

import _ "embed"

// IndexHTML is the single-page session viewer served at /.
//
//go:embed index.html
var IndexHTML []byte
