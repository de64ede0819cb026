/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package draw

import (
	"math"
	"unicode/utf8"
)

// Affine is a 2D affine transform stored as
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
type Affine struct{ A, B, C, D, E, F float64 }

var Identity = Affine{A: 1, D: 1}

// Mul returns m applied after n.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

func (m Affine) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// ScaleFactor is the uniform length multiplier of m, taken from its x axis.
// Transforms used here never shear.
func (m Affine) ScaleFactor() float64 {
	if m.B == 0 {
		if m.A < 0 {
			return -m.A
		}
		return m.A
	}
	return math.Hypot(m.A, m.B)
}

func Translate(tx, ty float64) Affine { return Affine{A: 1, D: 1, E: tx, F: ty} }
func Scale(sx, sy float64) Affine     { return Affine{A: sx, D: sy} }

// Rect is an axis-aligned rectangle defined by min corner and size. The zero
// Rect is empty.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (r Rect) Max() Point { return Point{r.X + r.W, r.Y + r.H} }

// Inset returns a rectangle inset by dx,dy on all sides (negative grows).
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// Union returns the minimal rect containing both. Empty rects are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	minX, minY := min(r.X, o.X), min(r.Y, o.Y)
	maxX, maxY := max(r.X+r.W, o.X+o.W), max(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Bounded is implemented by drawables that know their painted area.
type Bounded interface {
	Bounds() Rect
}

// Extent is the union of the bounds of items. Items without bounds are
// skipped.
func Extent(items []Drawable) Rect {
	var r Rect
	for _, d := range items {
		if b, ok := d.(Bounded); ok {
			r = r.Union(b.Bounds())
		}
	}
	return r
}

// Bounds covers the points grown by half the width. Strokes that render
// nothing have empty bounds.
func (s *Stroke) Bounds() Rect {
	if len(s.points) < 2 {
		return Rect{}
	}
	minX, minY := s.points[0].X, s.points[0].Y
	maxX, maxY := minX, minY
	for _, p := range s.points[1:] {
		minX, minY = min(minX, p.X), min(minY, p.Y)
		maxX, maxY = max(maxX, p.X), max(maxY, p.Y)
	}
	half := s.width / 2
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}.Inset(-half, -half)
}

// glyphAdvance is the monospace advance as a fraction of the font size.
const glyphAdvance = 0.6

// Bounds approximates the glyph box: one em tall above the baseline and a
// monospace advance per rune.
func (s *Sticker) Bounds() Rect {
	n := utf8.RuneCountInString(s.glyph)
	if n == 0 {
		return Rect{}
	}
	return Rect{
		X: s.pos.X + GlyphOffsetX,
		Y: s.pos.Y + GlyphOffsetY - GlyphFontSize,
		W: glyphAdvance * GlyphFontSize * float64(n),
		H: GlyphFontSize,
	}
}
