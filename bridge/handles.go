// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bridge

// Positions of the native handles a host passes to a RenderingTask.
const (
	DeviceIndex  = 0
	QueueIndex   = 1
	TextureIndex = 2
)

var handleNames = [...]string{
	DeviceIndex:  "device",
	QueueIndex:   "queue",
	TextureIndex: "texture",
}

// RenderingTask receives the native handles of the frame being drawn.
// names, when the host supplies them, labels each handle.
type RenderingTask interface {
	Run(surfaceType string, handles []uintptr, names []string)
}

// RenderingTaskFunc adapts a function to RenderingTask.
type RenderingTaskFunc func(surfaceType string, handles []uintptr, names []string)

// Run calls f.
func (f RenderingTaskFunc) Run(surfaceType string, handles []uintptr, names []string) {
	f(surfaceType, handles, names)
}
