/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package raster implements draw.Surface on an in-memory RGBA image. A
// canvas has a logical size and an integer scale; all drawing calls take
// logical coordinates and the scale is applied by the canvas transform.
package raster

import (
	"image"
	"math"

	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"gosketchpad/internal/draw"
)

// Canvas is a raster draw.Surface. It is not safe for concurrent use.
type Canvas struct {
	img   *image.RGBA
	w, h  int
	xf    draw.Affine // logical to device
	path  [][]fixed.Point26_6
	fonts *FontLibrary
}

var _ draw.Surface = (*Canvas)(nil)

// New returns a transparent canvas of w x h logical pixels backed by an image
// of w*scale x h*scale. Scales below 1 are treated as 1.
func New(w, h, scale int) *Canvas {
	if scale < 1 {
		scale = 1
	}
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w*scale, h*scale)),
		w:     w,
		h:     h,
		xf:    draw.Scale(float64(scale), float64(scale)),
		fonts: DefaultFonts,
	}
}

// Image returns the backing image. It is live: later drawing changes it.
func (c *Canvas) Image() *image.RGBA {
	if c == nil {
		return nil
	}
	return c.img
}

// Size returns the logical size.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// Scale returns the transform scale factor.
func (c *Canvas) Scale() int { return int(c.xf.ScaleFactor()) }

// SetFonts replaces the font library used by FillText.
func (c *Canvas) SetFonts(fl *FontLibrary) {
	if c != nil && fl != nil {
		c.fonts = fl
	}
}

func (c *Canvas) Clear() {
	if c == nil {
		return
	}
	xdraw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, xdraw.Src)
	c.path = nil
}

func (c *Canvas) BeginPath() {
	if c == nil {
		return
	}
	c.path = c.path[:0]
}

func (c *Canvas) MoveTo(x, y float64) {
	if c == nil {
		return
	}
	c.path = append(c.path, []fixed.Point26_6{c.toDevice(x, y)})
}

func (c *Canvas) LineTo(x, y float64) {
	if c == nil {
		return
	}
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	last := len(c.path) - 1
	c.path[last] = append(c.path[last], c.toDevice(x, y))
}

// StrokePath paints every subpath of the current path with round joins and
// round caps. Subpaths with a single point leave no mark.
func (c *Canvas) StrokePath(width float64, col draw.Color) {
	if c == nil || width <= 0 {
		return
	}
	b := c.img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), c.img, b)
	st := rasterx.NewStroker(b.Dx(), b.Dy(), scanner)
	st.SetStroke(toFixed(width*c.xf.ScaleFactor()), toFixed(4), rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
	st.SetColor(col.NRGBA())
	drawn := false
	for _, sub := range c.path {
		if len(sub) < 2 {
			continue
		}
		st.Start(sub[0])
		for _, p := range sub[1:] {
			st.Line(p)
		}
		st.Stop(false)
		drawn = true
	}
	if drawn {
		st.Draw()
	}
}

// FillText draws text with its baseline origin at (x, y).
func (c *Canvas) FillText(text string, x, y, size float64, col draw.Color) {
	if c == nil || text == "" {
		return
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col.NRGBA()),
		Face: c.fonts.faceFor(text, size*c.xf.ScaleFactor()),
		Dot:  c.toDevice(x, y),
	}
	d.DrawString(text)
}

func (c *Canvas) toDevice(x, y float64) fixed.Point26_6 {
	p := c.xf.Apply(draw.Pt(x, y))
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

func toFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }
