/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package draw holds the drawing command model: free-hand strokes and emoji
// stickers behind one Drawable contract, rendered onto an abstract Surface.
package draw

import "github.com/google/uuid"

// Point is a position in canvas pixel coordinates, origin top-left.
type Point struct {
	X, Y float64
}

// Pt is a short constructor for Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Drawable is a unit of renderable content kept in the history.
// Implemented by *Stroke and *Sticker only.
type Drawable interface {
	ID() string
	Render(s Surface)
}

// Surface is the 2D raster target drawables paint on. Implementations own
// their own transform; callers always pass canvas coordinates.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// StrokePath paints the current path with round joins and caps.
	StrokePath(width float64, c Color)
	// FillText paints text with its baseline origin at (x, y) using a
	// monospace face of the given pixel size.
	FillText(text string, x, y, size float64, c Color)
}

func newID() string { return uuid.NewString() }
