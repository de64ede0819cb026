/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package draw

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an RGBA paint. Name keeps the symbolic name it was parsed from,
// if any, so the UI can label swatches the way the user picked them.
type Color struct {
	R, G, B, A uint8
	Name       string
}

var (
	Black = Color{R: 0, G: 0, B: 0, A: 255, Name: "black"}
	White = Color{R: 255, G: 255, B: 255, A: 255, Name: "white"}
)

// NRGBA converts to the image/color representation.
func (c Color) NRGBA() color.NRGBA { return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

func (c Color) String() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor accepts CSS color names (case-insensitive) and #rgb / #rrggbb
// hex values. It reports false for anything else.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color{R: c.R, G: c.G, B: c.B, A: c.A, Name: s}, true
	}
	return Color{}, false
}

// MustColor is ParseColor for fixed presets; unknown input yields Black.
func MustColor(s string) Color {
	if c, ok := ParseColor(s); ok {
		return c
	}
	return Black
}

func parseHex(h string) (Color, bool) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}
