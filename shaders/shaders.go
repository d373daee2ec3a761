// Package shaders embeds the GLSL sources of the demo scenes.
package shaders

import "embed"

//go:embed *.vert *.frag
var FS embed.FS
