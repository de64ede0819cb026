/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package raster

import (
	"image"
	"testing"

	"gosketchpad/internal/draw"
)

func opaque(img *image.RGBA, x, y int) bool { return img.RGBAAt(x, y).A > 0 }

func countOpaque(img *image.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if opaque(img, x, y) {
				n++
			}
		}
	}
	return n
}

func TestNewCanvasScalesBackingImage(t *testing.T) {
	c := New(256, 256, 4)
	if b := c.Image().Bounds(); b.Dx() != 1024 || b.Dy() != 1024 {
		t.Fatalf("image bounds = %v, want 1024x1024", b)
	}
	if w, h := c.Size(); w != 256 || h != 256 || c.Scale() != 4 {
		t.Fatalf("size = %dx%d scale %d", w, h, c.Scale())
	}
	if countOpaque(c.Image()) != 0 {
		t.Fatalf("new canvas should be transparent")
	}
}

func TestStrokePathPaintsAlongSegment(t *testing.T) {
	c := New(64, 64, 1)
	s := draw.NewStroke(4, draw.MustColor("red"))
	s.Extend(draw.Pt(10, 32))
	s.Extend(draw.Pt(50, 32))
	s.Render(c)
	img := c.Image()
	for _, x := range []int{12, 30, 48} {
		px := img.RGBAAt(x, 32)
		if px.A == 0 || px.R < 200 || px.G > 50 {
			t.Fatalf("pixel (%d,32) = %+v, expected red", x, px)
		}
	}
	if opaque(img, 30, 10) || opaque(img, 60, 60) {
		t.Fatalf("pixels far from the stroke should stay transparent")
	}
}

func TestSinglePointStrokeLeavesNoMark(t *testing.T) {
	c := New(32, 32, 2)
	s := draw.NewStroke(10, draw.Black)
	s.Extend(draw.Pt(16, 16))
	s.Render(c)
	if n := countOpaque(c.Image()); n != 0 {
		t.Fatalf("1-point stroke painted %d pixels", n)
	}
}

func TestScaleAppliesToCoordinates(t *testing.T) {
	c := New(32, 32, 4)
	c.BeginPath()
	c.MoveTo(2, 16)
	c.LineTo(30, 16)
	c.StrokePath(1, draw.Black)
	img := c.Image()
	// logical y=16 lands on device row 64
	if !opaque(img, 64, 64) {
		t.Fatalf("expected paint on device row 64")
	}
	if opaque(img, 64, 16) {
		t.Fatalf("unscaled row 16 should be empty")
	}
}

func TestFillTextAndClear(t *testing.T) {
	c := New(64, 64, 1)
	st := draw.NewSticker("*")
	st.MoveTo(draw.Pt(20, 20))
	st.Render(c)
	if countOpaque(c.Image()) == 0 {
		t.Fatalf("glyph should paint some pixels")
	}
	c.Clear()
	if n := countOpaque(c.Image()); n != 0 {
		t.Fatalf("clear left %d pixels", n)
	}
}

func TestNilCanvasIsNoop(t *testing.T) {
	var c *Canvas
	c.Clear()
	c.BeginPath()
	c.MoveTo(1, 1)
	c.LineTo(2, 2)
	c.StrokePath(1, draw.Black)
	c.FillText("x", 1, 1, 12, draw.Black)
	if c.Image() != nil {
		t.Fatalf("nil canvas has no image")
	}
}
