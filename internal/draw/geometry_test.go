/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package draw_test

import (
	"testing"

	"gosketchpad/internal/draw"
)

func TestAffineScaleThenTranslate(t *testing.T) {
	m := draw.Translate(10, 20).Mul(draw.Scale(4, 4))
	if got := m.Apply(draw.Pt(1, 2)); got != draw.Pt(14, 28) {
		t.Fatalf("Apply = %v", got)
	}
	if f := m.ScaleFactor(); f != 4 {
		t.Fatalf("ScaleFactor = %v", f)
	}
	if got := draw.Identity.Apply(draw.Pt(3, 5)); got != draw.Pt(3, 5) {
		t.Fatalf("identity moved point: %v", got)
	}
}

func TestRectUnionSkipsEmpty(t *testing.T) {
	a := draw.Rect{X: 0, Y: 0, W: 10, H: 10}
	b := draw.Rect{X: 5, Y: -5, W: 10, H: 10}
	if u := a.Union(b); u != (draw.Rect{X: 0, Y: -5, W: 15, H: 15}) {
		t.Fatalf("Union = %+v", u)
	}
	if u := (draw.Rect{}).Union(a); u != a {
		t.Fatalf("empty union = %+v", u)
	}
	if u := a.Union(draw.Rect{X: 100, Y: 100}); u != a {
		t.Fatalf("zero-size rect widened union: %+v", u)
	}
}

func TestExtent(t *testing.T) {
	st := draw.NewStroke(10, draw.Black)
	st.Extend(draw.Pt(10, 10))
	if !st.Bounds().Empty() {
		t.Fatalf("single-point stroke should have empty bounds")
	}
	st.Extend(draw.Pt(30, 20))
	if b := st.Bounds(); b != (draw.Rect{X: 5, Y: 5, W: 30, H: 20}) {
		t.Fatalf("stroke bounds = %+v", b)
	}

	sk := draw.NewSticker("ab")
	sk.MoveTo(draw.Pt(100, 100))
	want := draw.Rect{X: 92, Y: 84, W: 0.6 * 32 * 2, H: 32}
	if b := sk.Bounds(); b != want {
		t.Fatalf("sticker bounds = %+v, want %+v", b, want)
	}

	ext := draw.Extent([]draw.Drawable{st, sk})
	if ext != (draw.Rect{X: 5, Y: 5, W: want.Max().X - 5, H: 111}) {
		t.Fatalf("extent = %+v", ext)
	}
	if !draw.Extent(nil).Empty() {
		t.Fatalf("empty drawing should have empty extent")
	}
}
