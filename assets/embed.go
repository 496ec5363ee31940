// Package assets embeds the files shipped inside the binary.
package assets

import _ "embed"

//go:embed shapes.yaml
var shapes []byte

// DefaultShapes returns the built-in shape catalog in YAML.
func DefaultShapes() []byte { return shapes }
