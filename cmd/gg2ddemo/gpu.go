//go:build gpu

package main

// Building with -tags gpu registers gg's GPU accelerator, which draws the
// offscreen frames where the hardware allows.
import _ "github.com/gogpu/gg/gpu"
