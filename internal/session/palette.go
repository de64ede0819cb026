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
	"log/slog"

	"gosketchpad/internal/draw"
)

// SelectMarker switches to stroke mode with the given width. The cursor
// glyph goes back to the marker glyph.
func (s *Session) SelectMarker(width float64) {
	if width <= 0 {
		width = s.presets.Widths[0]
	}
	s.tool.Mode = ModeStroke
	s.tool.Glyph = MarkerGlyph
	s.tool.Width = width
}

// SelectColor sets the marker color for strokes started afterwards.
func (s *Session) SelectColor(c draw.Color) { s.tool.Color = c }

// SelectSticker switches to sticker mode stamping glyph.
func (s *Session) SelectSticker(glyph string) {
	s.tool.Mode = ModeSticker
	s.tool.Glyph = glyph
}

// Presets returns the palettes including custom stickers.
func (s *Session) Presets() Presets {
	p := s.presets
	p.Widths = append([]float64(nil), p.Widths...)
	p.Colors = append([]ColorPreset(nil), p.Colors...)
	p.Stickers = append([]string(nil), p.Stickers...)
	return p
}

// Stickers returns the sticker palette in button order.
func (s *Session) Stickers() []string { return append([]string(nil), s.presets.Stickers...) }

// AddCustomSticker validates user text and appends it to the sticker
// palette. Blank text yields ErrEmptySticker and changes nothing. The drawing
// is never touched; the caller selects the new sticker when its button is
// pressed.
func (s *Session) AddCustomSticker(text string) (string, error) {
	g := normalizeGlyph(text)
	if g == "" {
		s.log.WarnContext(s.ctx, "custom sticker rejected")
		return "", ErrEmptySticker
	}
	s.presets.Stickers = append(s.presets.Stickers, g)
	s.log.InfoContext(s.ctx, "custom sticker added", slog.String("glyph", g))
	return g, nil
}
