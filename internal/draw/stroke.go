/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package draw

// Stroke is a free-hand polyline. Points are append-only and kept in drawing
// order. Width and color are fixed at creation.
type Stroke struct {
	id     string
	points []Point
	width  float64
	color  Color
}

// NewStroke returns a stroke with no points yet.
func NewStroke(width float64, color Color) *Stroke {
	return &Stroke{id: newID(), width: width, color: color}
}

func (s *Stroke) ID() string { return s.id }

// Extend appends p. Duplicate or adjacent points are accepted as-is.
func (s *Stroke) Extend(p Point) { s.points = append(s.points, p) }

// Points returns a copy of the recorded points.
func (s *Stroke) Points() []Point { return append([]Point(nil), s.points...) }

// Len is the number of recorded points.
func (s *Stroke) Len() int { return len(s.points) }

func (s *Stroke) Width() float64 { return s.width }
func (s *Stroke) Color() Color { return s.color }

// Render draws a connected path through all points. Strokes with fewer than
// two points leave no mark.
func (s *Stroke) Render(surf Surface) {
	if surf == nil || len(s.points) < 2 {
		return
	}
	surf.BeginPath()
	surf.MoveTo(s.points[0].X, s.points[0].Y)
	for _, p := range s.points[1:] {
		surf.LineTo(p.X, p.Y)
	}
	surf.StrokePath(s.width, s.color)
}
