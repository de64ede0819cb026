/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package render repaints a surface from a drawing session. Every change
// repaints the whole scene: clear, then the history oldest first, then the
// cursor preview on top when the cursor moved.
package render

import (
	"gosketchpad/internal/draw"
	"gosketchpad/internal/session"
)

// Source is the part of a session the view reads and listens to.
type Source interface {
	Items() []draw.Drawable
	Preview() draw.Drawable
	On(evt session.Event, fn func()) (off func())
	Dispatch(evt session.Event)
}

// Paint clears surf and renders items in order, so later drawables occlude
// earlier ones. The export path uses the same item Render calls.
func Paint(surf draw.Surface, items []draw.Drawable) {
	if surf == nil {
		return
	}
	surf.Clear()
	for _, d := range items {
		d.Render(surf)
	}
}

// View keeps a surface in sync with a Source.
type View struct {
	surf   draw.Surface
	src    Source
	offs   []func()
	frames int
	// OnPaint, when set, runs after each repaint; UIs use it to refresh
	// whatever displays the surface.
	OnPaint func()
}

// NewView returns a view painting onto surf. A nil surface turns every
// repaint into a no-op.
func NewView(surf draw.Surface) *View { return &View{surf: surf} }

// Attach subscribes to src. Attaching again first detaches.
func (v *View) Attach(src Source) {
	v.Detach()
	v.src = src
	v.offs = append(v.offs,
		src.On(session.DrawingChanged, v.drawingChanged),
		src.On(session.CursorChanged, v.cursorChanged),
	)
}

// Detach drops the subscriptions.
func (v *View) Detach() {
	for _, off := range v.offs {
		off()
	}
	v.offs = nil
	v.src = nil
}

// Frames counts completed repaints.
func (v *View) Frames() int { return v.frames }

func (v *View) drawingChanged() {
	if v.surf == nil || v.src == nil {
		return
	}
	Paint(v.surf, v.src.Items())
	v.frames++
	if v.OnPaint != nil {
		v.OnPaint()
	}
}

// cursorChanged repaints through a nested drawing-changed dispatch, then
// overlays the preview.
func (v *View) cursorChanged() {
	if v.surf == nil || v.src == nil {
		return
	}
	v.src.Dispatch(session.DrawingChanged)
	if p := v.src.Preview(); p != nil {
		p.Render(v.surf)
		if v.OnPaint != nil {
			v.OnPaint()
		}
	}
}
