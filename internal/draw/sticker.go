/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package draw

// Glyph placement relative to a sticker's anchor. These are fixed design
// values, not derived from glyph metrics.
const (
	GlyphOffsetX  = -8.0
	GlyphOffsetY  = 16.0
	GlyphFontSize = 32.0
)

// GlyphColor is the fill used for sticker and cursor glyphs.
var GlyphColor = Black

// Sticker is an emoji stamp. The glyph is fixed; the position may move while
// the sticker is used as a cursor preview.
type Sticker struct {
	id    string
	glyph string
	pos   Point
}

// NewSticker returns a sticker at the zero position.
func NewSticker(glyph string) *Sticker {
	return &Sticker{id: newID(), glyph: glyph}
}

func (s *Sticker) ID() string { return s.id }
func (s *Sticker) Glyph() string { return s.glyph }
func (s *Sticker) Position() Point { return s.pos }
func (s *Sticker) MoveTo(p Point) { s.pos = p }

// Render paints the glyph with its baseline offset from the anchor.
func (s *Sticker) Render(surf Surface) {
	if surf == nil {
		return
	}
	surf.FillText(s.glyph, s.pos.X+GlyphOffsetX, s.pos.Y+GlyphOffsetY, GlyphFontSize, GlyphColor)
}
