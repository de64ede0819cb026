/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package raster

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	applog "gosketchpad/internal/log"
)

// FontLibrary holds the typefaces FillText picks from, in preference order.
// Go Mono is always last so text renders without system fonts; basicfont
// stands in if even that fails to parse.
type FontLibrary struct {
	mu    sync.Mutex
	fonts []*opentype.Font
	faces map[faceKey]font.Face
	buf   sfnt.Buffer
}

type faceKey struct {
	font int
	px   float64
}

// DefaultFonts is shared by canvases created with New.
var DefaultFonts = NewFontLibrary()

func NewFontLibrary() *FontLibrary {
	fl := &FontLibrary{faces: make(map[faceKey]font.Face)}
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		applog.WithComponent("raster").Error("parse gomono", slog.Any("err", err))
		return fl
	}
	fl.fonts = append(fl.fonts, f)
	return fl
}

// LoadTTF reads a TrueType/OpenType file and prefers it over the fonts
// already loaded. Point it at an emoji-capable font to render emoji
// stickers.
func (fl *FontLibrary) LoadTTF(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	if err := fl.Add(data); err != nil {
		return fmt.Errorf("font %s: %w", path, err)
	}
	applog.WithComponent("raster").Info("font loaded", slog.String("path", path))
	return nil
}

// Add parses font data and puts it first in preference order.
func (fl *FontLibrary) Add(data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	fl.mu.Lock()
	defer fl.mu.Unlock()
	fl.fonts = append([]*opentype.Font{f}, fl.fonts...)
	// indexes shifted
	fl.faces = make(map[faceKey]font.Face)
	return nil
}

// Len reports how many fonts are loaded.
func (fl *FontLibrary) Len() int {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	return len(fl.fonts)
}

// faceFor returns a face at px pixels from the first font covering every
// rune of text, or the last font when none does.
func (fl *FontLibrary) faceFor(text string, px float64) font.Face {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if len(fl.fonts) == 0 {
		return basicfont.Face7x13
	}
	idx := len(fl.fonts) - 1
	for i, f := range fl.fonts {
		if fl.covers(f, text) {
			idx = i
			break
		}
	}
	key := faceKey{font: idx, px: px}
	if f, ok := fl.faces[key]; ok {
		return f
	}
	// 72 DPI makes Size equal to pixels
	f, err := opentype.NewFace(fl.fonts[idx], &opentype.FaceOptions{Size: px, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	fl.faces[key] = f
	return f
}

// covers reports whether f has a glyph for every rune in text. Joiners and
// variation selectors are shaping hints and are skipped.
func (fl *FontLibrary) covers(f *opentype.Font, text string) bool {
	for _, r := range text {
		if r == 0x200d || (r >= 0xfe00 && r <= 0xfe0f) {
			continue
		}
		gi, err := f.GlyphIndex(&fl.buf, r)
		if err != nil || gi == 0 {
			return false
		}
	}
	return true
}
