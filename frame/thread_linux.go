// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux

package frame

import "golang.org/x/sys/unix"

func currentThreadID() int64 { return int64(unix.Gettid()) }
