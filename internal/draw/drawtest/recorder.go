/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package drawtest provides a Surface that records calls, for tests.
package drawtest

import (
	"fmt"

	"gosketchpad/internal/draw"
)

// Op is one recorded surface call.
type Op struct {
	Kind  string // clear, begin, move, line, stroke, text
	X, Y  float64
	Width float64
	Size  float64
	Text  string
	Color draw.Color
}

func (o Op) String() string {
	switch o.Kind {
	case "move", "line":
		return fmt.Sprintf("%s(%g,%g)", o.Kind, o.X, o.Y)
	case "stroke":
		return fmt.Sprintf("stroke(%g,%s)", o.Width, o.Color)
	case "text":
		return fmt.Sprintf("text(%q,%g,%g)", o.Text, o.X, o.Y)
	default:
		return o.Kind
	}
}

// Recorder implements draw.Surface by appending every call to Ops.
type Recorder struct {
	Ops []Op
}

var _ draw.Surface = (*Recorder)(nil)

func (r *Recorder) Clear() { r.Ops = append(r.Ops, Op{Kind: "clear"}) }
func (r *Recorder) BeginPath() { r.Ops = append(r.Ops, Op{Kind: "begin"}) }
func (r *Recorder) MoveTo(x, y float64) { r.Ops = append(r.Ops, Op{Kind: "move", X: x, Y: y}) }
func (r *Recorder) LineTo(x, y float64) { r.Ops = append(r.Ops, Op{Kind: "line", X: x, Y: y}) }

func (r *Recorder) StrokePath(width float64, c draw.Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke", Width: width, Color: c})
}

func (r *Recorder) FillText(text string, x, y, size float64, c draw.Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", Text: text, X: x, Y: y, Size: size, Color: c})
}

// Kinds returns the sequence of recorded op kinds.
func (r *Recorder) Kinds() []string {
	out := make([]string, len(r.Ops))
	for i, o := range r.Ops {
		out[i] = o.Kind
	}
	return out
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, o := range r.Ops {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() { r.Ops = nil }
