/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */
package session

import (
	"strings"

	"gosketchpad/internal/draw"
)

// Mode selects what a pointer press produces.
type Mode int

const (
	ModeStroke Mode = iota
	ModeSticker
)

func (m Mode) String() string {
	if m == ModeSticker {
		return "sticker"
	}
	return "stroke"
}

// MarkerGlyph is the cursor glyph shown while a marker is selected.
const MarkerGlyph = "*"

// Marker widths offered by default.
const (
	ThinWidth  = 1.0
	ThickWidth = 10.0
)

// Tool is the external configuration read at pointer-down time.
type Tool struct {
	Mode  Mode
	Glyph string
	Width float64
	Color draw.Color
}

// ColorPreset is a palette entry. Label is what the button shows, which may
// differ from the paint name (the "Indigo" button paints purple).
type ColorPreset struct {
	Label string
	Color draw.Color
}

// Presets are the palettes a UI offers.
type Presets struct {
	Widths   []float64
	Colors   []ColorPreset
	Stickers []string
	// DefaultColor is the marker color before any palette pick.
	DefaultColor draw.Color
}

// DefaultPresets mirrors the stock toolbar.
func DefaultPresets() Presets {
	return Presets{
		Widths: []float64{ThinWidth, ThickWidth},
		Colors: []ColorPreset{
			{Label: "Red", Color: draw.MustColor("red")},
			{Label: "Orange", Color: draw.MustColor("orange")},
			{Label: "Yellow", Color: draw.MustColor("yellow")},
			{Label: "Blue", Color: draw.MustColor("blue")},
			{Label: "Indigo", Color: draw.MustColor("purple")},
			{Label: "Violet", Color: draw.MustColor("violet")},
		},
		Stickers:     []string{"😀", "🤔", "🍣"},
		DefaultColor: draw.White,
	}
}

func (p Presets) withDefaults() Presets {
	d := DefaultPresets()
	if len(p.Widths) == 0 {
		p.Widths = d.Widths
	}
	if len(p.Colors) == 0 {
		p.Colors = d.Colors
	}
	if len(p.Stickers) == 0 {
		p.Stickers = d.Stickers
	}
	if p.DefaultColor.A == 0 && p.DefaultColor.Name == "" {
		p.DefaultColor = d.DefaultColor
	}
	// copies so AddCustomSticker never aliases the caller's slice
	p.Widths = append([]float64(nil), p.Widths...)
	p.Colors = append([]ColorPreset(nil), p.Colors...)
	p.Stickers = append([]string(nil), p.Stickers...)
	return p
}

func (p Presets) defaultTool() Tool {
	return Tool{Mode: ModeStroke, Glyph: MarkerGlyph, Width: p.Widths[0], Color: p.DefaultColor}
}

// normalizeGlyph trims surrounding whitespace from custom sticker text.
func normalizeGlyph(s string) string { return strings.TrimSpace(s) }
