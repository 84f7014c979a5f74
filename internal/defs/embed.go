package defs

import "embed"

//go:embed content/*.yaml
var contentFS embed.FS
