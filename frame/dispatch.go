// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg2d"
)

var errLoopRunning = errors.New("frame: event loop already running")

// EventLoop is a UI thread: one goroutine, locked to its OS thread, that
// runs queued functions in order.
//
// IsUIThread compares OS thread ids. Where the OS exposes none it
// compares goroutine ids, which is equivalent for the locked loop
// goroutine.
type EventLoop struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	running atomic.Bool
	tid     atomic.Int64
}

var _ gg2d.Dispatcher = (*EventLoop)(nil)

// NewEventLoop returns a loop that is not yet running.
func NewEventLoop() *EventLoop {
	return &EventLoop{wake: make(chan struct{}, 1)}
}

// Run runs queued functions on the calling goroutine until ctx is done.
// It returns ctx.Err(). Functions still queued at that point are dropped.
func (l *EventLoop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return errLoopRunning
	}
	defer l.running.Store(false)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	l.tid.Store(currentThreadID())
	defer l.tid.Store(0)

	for {
		for _, fn := range l.drain() {
			l.run(fn)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// InvokeLater queues fn and returns at once.
func (l *EventLoop) InvokeLater(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Invoke queues fn and waits until it has run or ctx is done.
func (l *EventLoop) Invoke(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	l.InvokeLater(func() {
		defer close(done)
		fn()
	})
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsUIThread reports whether the caller runs on the loop's thread.
func (l *EventLoop) IsUIThread() bool {
	id := l.tid.Load()
	return id != 0 && id == currentThreadID()
}

func (l *EventLoop) drain() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	q := l.queue
	l.queue = nil
	return q
}

func (l *EventLoop) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			gg2d.Logger().Warn("frame: UI task panicked", "panic", r)
		}
	}()
	fn()
}
