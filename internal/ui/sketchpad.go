//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */
package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"gosketchpad/internal/draw"
	"gosketchpad/internal/raster"
	"gosketchpad/internal/render"
	"gosketchpad/internal/session"
)

// liveScale renders the on-screen canvas at twice its logical size so
// strokes stay crisp on high-density displays.
const liveScale = 2

// SketchPad is the drawing widget. It forwards desktop pointer events to a
// session and shows a raster canvas the session's view repaints.
type SketchPad struct {
	widget.BaseWidget

	sess   *session.Session
	canvas *raster.Canvas
	view   *render.View
	img    *canvas.Image
	bg     *canvas.Rectangle
	w, h   float32
}

var (
	_ desktop.Hoverable = (*SketchPad)(nil)
	_ desktop.Mouseable = (*SketchPad)(nil)
)

// NewSketchPad creates a w x h pad attached to sess.
func NewSketchPad(sess *session.Session, w, h int) *SketchPad {
	p := &SketchPad{
		sess:   sess,
		canvas: raster.New(w, h, liveScale),
		w:      float32(w),
		h:      float32(h),
	}
	p.img = canvas.NewImageFromImage(p.canvas.Image())
	p.img.FillMode = canvas.ImageFillStretch
	p.img.ScaleMode = canvas.ImageScaleSmooth
	p.img.SetMinSize(fyne.NewSize(p.w, p.h))
	p.bg = canvas.NewRectangle(color.RGBA{R: 30, G: 30, B: 34, A: 255})

	p.view = render.NewView(p.canvas)
	p.view.OnPaint = func() { p.img.Refresh() }
	p.view.Attach(sess)

	p.ExtendBaseWidget(p)
	return p
}

func (p *SketchPad) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(p.bg, p.img))
}

func (p *SketchPad) MinSize() fyne.Size { return fyne.NewSize(p.w, p.h) }

// Frames reports how often the view repainted.
func (p *SketchPad) Frames() int { return p.view.Frames() }

func (p *SketchPad) MouseIn(e *desktop.MouseEvent) { p.sess.PointerEnter(p.toCanvas(e.Position)) }

func (p *SketchPad) MouseMoved(e *desktop.MouseEvent) { p.sess.PointerMove(p.toCanvas(e.Position)) }

func (p *SketchPad) MouseOut() { p.sess.PointerLeave() }

func (p *SketchPad) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.sess.PointerDown(p.toCanvas(e.Position))
}

func (p *SketchPad) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p.sess.PointerUp(p.toCanvas(e.Position))
}

// toCanvas maps a widget position to logical canvas coordinates. The widget
// may be stretched by its container.
func (p *SketchPad) toCanvas(pos fyne.Position) draw.Point {
	sz := p.Size()
	sx, sy := float32(1), float32(1)
	if sz.Width > 0 && sz.Height > 0 {
		sx, sy = p.w/sz.Width, p.h/sz.Height
	}
	return draw.Pt(float64(pos.X*sx), float64(pos.Y*sy))
}
