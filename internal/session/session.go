/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */
// Package session is the pointer-driven controller of a drawing session. It
// owns the undo history, the selected tool and the cursor preview, turns
// pointer events into history mutations and announces every change through
// synchronous notifications.
package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"gosketchpad/internal/draw"
	applog "gosketchpad/internal/log"
	"gosketchpad/internal/undo"
)

// ErrEmptySticker is returned when custom sticker text is empty or blank.
var ErrEmptySticker = errors.New("sticker text is empty")

// State is the pointer state of the controller.
type State int

const (
	// Idle: pointer outside the canvas.
	Idle State = iota
	// Hovering: pointer over the canvas with the button up; preview active.
	Hovering
	// Dragging: button down, extending a stroke or after placing a sticker.
	Dragging
)

func (s State) String() string {
	switch s {
	case Hovering:
		return "hovering"
	case Dragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Options configures a new session. Zero values select defaults.
type Options struct {
	History undo.Config
	Presets Presets
	Logger  *slog.Logger
}

// Session is not safe for concurrent use. All calls must come from the
// goroutine that delivers input events.
type Session struct {
	id      string
	ctx     context.Context
	log     *slog.Logger
	history *undo.History
	presets Presets
	tool    Tool

	state   State
	active  *draw.Stroke  // stroke being dragged; also held by history
	preview *draw.Sticker // never committed

	listeners map[Event][]listener
	nextID    int
}

// New starts a session with an empty history and the default tool.
func New(opts Options) *Session {
	id := uuid.NewString()
	l := opts.Logger
	if l == nil {
		l = applog.WithComponent("session")
	}
	p := opts.Presets.withDefaults()
	s := &Session{
		id:        id,
		ctx:       applog.WithSession(context.Background(), id),
		log:       l,
		history:   undo.NewHistory(opts.History),
		presets:   p,
		tool:      p.defaultTool(),
		listeners: make(map[Event][]listener),
	}
	s.log.InfoContext(s.ctx, "session started", slog.Int("stickers", len(p.Stickers)))
	return s
}

func (s *Session) ID() string { return s.id }

// Context carries the session id for log correlation.
func (s *Session) Context() context.Context { return s.ctx }

func (s *Session) State() State { return s.state }
func (s *Session) Tool() Tool { return s.tool }

// History exposes the undo log. Callers must not mutate it behind the
// session's back; use Undo, Redo and Clear so listeners are notified.
func (s *Session) History() *undo.History { return s.history }

// Items returns the committed drawables oldest first.
func (s *Session) Items() []draw.Drawable { return s.history.Items() }

// Preview returns the cursor preview or nil when none is shown.
func (s *Session) Preview() draw.Drawable {
	if s.preview == nil {
		return nil
	}
	return s.preview
}

// PointerEnter starts hovering and shows the preview at p.
func (s *Session) PointerEnter(p draw.Point) {
	s.state = Hovering
	s.showPreview(p)
	s.debug("enter", p)
	s.Dispatch(CursorChanged)
}

// PointerLeave drops the preview and ends any drag.
func (s *Session) PointerLeave() {
	s.state = Idle
	s.active = nil
	s.preview = nil
	s.log.DebugContext(s.ctx, "leave")
	s.Dispatch(CursorChanged)
}

// PointerDown commits a sticker or starts a stroke at p. A press without a
// prior enter is treated as entering at p.
func (s *Session) PointerDown(p draw.Point) {
	if s.state == Dragging {
		return
	}
	s.state = Dragging
	switch s.tool.Mode {
	case ModeSticker:
		st := draw.NewSticker(s.tool.Glyph)
		st.MoveTo(p)
		s.history.Commit(st)
		s.log.DebugContext(s.ctx, "sticker placed", slog.String("id", st.ID()), slog.String("glyph", st.Glyph()))
	default:
		st := draw.NewStroke(s.tool.Width, s.tool.Color)
		st.Extend(p)
		// committed now and extended in place until pointer-up
		s.history.Commit(st)
		s.active = st
		s.log.DebugContext(s.ctx, "stroke started", slog.String("id", st.ID()),
			slog.Float64("width", st.Width()), slog.String("color", st.Color().String()))
	}
	s.Dispatch(DrawingChanged)
}

// PointerMove extends the active stroke while dragging, or moves the
// preview while hovering.
func (s *Session) PointerMove(p draw.Point) {
	switch s.state {
	case Dragging:
		// stickers are placed on press; only an active stroke follows the drag
		if s.active != nil {
			s.preview = nil
			s.active.Extend(p)
		}
		s.Dispatch(DrawingChanged)
	case Hovering:
		s.showPreview(p)
		s.Dispatch(CursorChanged)
	}
}

// PointerUp ends a drag and shows the preview again at p.
func (s *Session) PointerUp(p draw.Point) {
	if s.state == Idle {
		return
	}
	if s.active != nil {
		s.log.DebugContext(s.ctx, "stroke finished", slog.String("id", s.active.ID()), slog.Int("points", s.active.Len()))
	}
	s.active = nil
	s.state = Hovering
	s.showPreview(p)
	s.Dispatch(CursorChanged)
}

// Undo moves the last drawable to the redo buffer. Empty history is a no-op
// but still repaints.
func (s *Session) Undo() {
	if d, ok := s.history.Undo(); ok {
		s.forgetActive(d)
		s.log.DebugContext(s.ctx, "undo", slog.String("id", d.ID()))
	}
	s.Dispatch(DrawingChanged)
}

// Redo restores the most recently undone drawable.
func (s *Session) Redo() {
	if d, ok := s.history.Redo(); ok {
		s.log.DebugContext(s.ctx, "redo", slog.String("id", d.ID()))
	}
	s.Dispatch(DrawingChanged)
}

// Clear empties history and redo buffer.
func (s *Session) Clear() {
	n, undone, _ := s.history.Stats()
	s.history.Clear()
	s.active = nil
	s.log.InfoContext(s.ctx, "cleared", slog.Int("drawables", n), slog.Int("undone", undone))
	s.Dispatch(DrawingChanged)
}

// Reset clears the drawing and restores the default tool. Custom stickers
// added during the session are kept.
func (s *Session) Reset() {
	s.tool = s.presets.defaultTool()
	s.state = Idle
	s.preview = nil
	s.Clear()
}

func (s *Session) showPreview(p draw.Point) {
	s.preview = draw.NewSticker(s.tool.Glyph)
	s.preview.MoveTo(p)
}

// forgetActive stops extending a stroke that was undone mid-drag.
func (s *Session) forgetActive(d draw.Drawable) {
	if st, ok := d.(*draw.Stroke); ok && st == s.active {
		s.active = nil
	}
}

func (s *Session) debug(msg string, p draw.Point) {
	s.log.DebugContext(s.ctx, msg, slog.Float64("x", p.X), slog.Float64("y", p.Y), slog.String("state", s.state.String()))
}
