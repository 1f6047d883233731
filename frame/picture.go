// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import "github.com/gogpu/gg2d/canvas"

// PictureStrategy records each frame as a picture. Compositing replays the
// picture once and discards it.
type PictureStrategy struct {
	rec *canvas.Recorder
}

var _ Strategy = (*PictureStrategy)(nil)

// BeginRecording starts a recording, dropping one left unfinished.
func (s *PictureStrategy) BeginRecording(width, height int) (*canvas.Recorder, error) {
	rec, err := canvas.NewRecorder(width, height)
	if err != nil {
		return nil, err
	}
	s.rec = rec
	return rec, nil
}

// FinishRecording ends the current recording. It returns nil when nothing
// is being recorded.
func (s *PictureStrategy) FinishRecording() *canvas.Picture {
	if s.rec == nil {
		return nil
	}
	pic := s.rec.Finish()
	s.rec = nil
	return pic
}

func (s *PictureStrategy) Begin(width, height int) (canvas.Canvas, error) {
	return s.BeginRecording(width, height)
}

func (s *PictureStrategy) Composite(dst canvas.Canvas) error {
	pic := s.FinishRecording()
	if pic == nil {
		return ErrNotRecording
	}
	defer pic.Release()
	return pic.Playback(dst)
}
