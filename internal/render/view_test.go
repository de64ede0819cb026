/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package render

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"gosketchpad/internal/draw"
	"gosketchpad/internal/draw/drawtest"
	"gosketchpad/internal/session"
)

func newSession() *session.Session {
	return session.New(session.Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

func TestDrawingChangedRepaintsHistoryInOrder(t *testing.T) {
	rec := &drawtest.Recorder{}
	s := newSession()
	v := NewView(rec)
	v.Attach(s)

	s.PointerDown(draw.Pt(0, 0))
	s.PointerMove(draw.Pt(10, 10))
	s.PointerUp(draw.Pt(10, 10))
	rec.Reset()
	s.Undo()
	s.Redo()

	kinds := strings.Join(rec.Kinds(), " ")
	want := "clear clear begin move line stroke"
	if kinds != want {
		t.Fatalf("ops = %q, want %q", kinds, want)
	}
	if v.Frames() == 0 {
		t.Fatalf("frames not counted")
	}
}

func TestCursorChangedOverlaysPreview(t *testing.T) {
	rec := &drawtest.Recorder{}
	s := newSession()
	v := NewView(rec)
	v.Attach(s)

	s.SelectSticker("🍣")
	s.PointerEnter(draw.Pt(30, 30))
	s.PointerDown(draw.Pt(30, 30))
	s.PointerUp(draw.Pt(30, 30))
	rec.Reset()
	s.PointerMove(draw.Pt(40, 40))

	// full repaint with the committed sticker, then the preview on top
	if got := strings.Join(rec.Kinds(), " "); got != "clear text text" {
		t.Fatalf("ops = %q", got)
	}
	last := rec.Ops[len(rec.Ops)-1]
	if last.X != 40+draw.GlyphOffsetX || last.Y != 40+draw.GlyphOffsetY {
		t.Fatalf("preview drawn at (%v,%v)", last.X, last.Y)
	}
	if s.History().Len() != 1 {
		t.Fatalf("preview must not be committed")
	}
}

func TestLeaveRepaintsWithoutPreview(t *testing.T) {
	rec := &drawtest.Recorder{}
	s := newSession()
	NewView(rec).Attach(s)
	s.PointerEnter(draw.Pt(1, 1))
	rec.Reset()
	s.PointerLeave()
	if got := strings.Join(rec.Kinds(), " "); got != "clear" {
		t.Fatalf("ops = %q", got)
	}
}

func TestNilSurfaceAndDetach(t *testing.T) {
	s := newSession()
	v := NewView(nil)
	v.Attach(s)
	s.PointerEnter(draw.Pt(1, 1))
	s.PointerDown(draw.Pt(1, 1))
	if v.Frames() != 0 {
		t.Fatalf("nil surface should not count frames")
	}

	rec := &drawtest.Recorder{}
	v2 := NewView(rec)
	v2.Attach(s)
	v2.Detach()
	s.Clear()
	if len(rec.Ops) != 0 {
		t.Fatalf("detached view still painted: %v", rec.Kinds())
	}
}

func TestPaintUsesSameRenderAsLiveView(t *testing.T) {
	st := draw.NewStroke(2, draw.Black)
	st.Extend(draw.Pt(0, 0))
	st.Extend(draw.Pt(3, 3))
	live, direct := &drawtest.Recorder{}, &drawtest.Recorder{}
	s := newSession()
	s.History().Commit(st)
	NewView(live).Attach(s)
	s.Dispatch(session.DrawingChanged)
	Paint(direct, s.Items())
	if strings.Join(live.Kinds(), " ") != strings.Join(direct.Kinds(), " ") {
		t.Fatalf("live %v != direct %v", live.Kinds(), direct.Kinds())
	}
}
