// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !linux && !windows

package frame

import (
	"bytes"
	"runtime"
	"strconv"
)

// currentThreadID returns the calling goroutine's id, read from the
// header of its stack trace. The loop goroutine is locked to its thread,
// so the id identifies that thread while the loop runs.
func currentThreadID() int64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
