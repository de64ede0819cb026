/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export writes a drawing to files. Every exporter replays the same
// Drawable.Render calls the live view uses, onto an offscreen surface.
package export

import (
	"fmt"
)

// PNGFileName is the fixed name of a PNG export.
const PNGFileName = "pictureDownload.png"

const (
	// MaxCanvasSide bounds the logical canvas width and height.
	MaxCanvasSide = 8192
	// MaxPixelSide bounds each side of a rendered image, Width*Scale and
	// Height*Scale.
	MaxPixelSide = 16384
)

// Options controls export size. Width and Height are the logical canvas
// size; Scale multiplies both for raster output.
type Options struct {
	Width  int
	Height int
	Scale  int
}

// Defaults returns a 256x256 canvas exported at 4x.
func Defaults() Options {
	return Options{Width: 256, Height: 256, Scale: 4}
}

// withDefaults fills zero fields from Defaults and rejects negative or
// oversized ones.
func (o Options) withDefaults() (Options, error) {
	d := Defaults()
	if o.Width < 0 || o.Height < 0 || o.Scale < 0 {
		return o, fmt.Errorf("invalid export size %dx%d at %dx", o.Width, o.Height, o.Scale)
	}
	if o.Width == 0 {
		o.Width = d.Width
	}
	if o.Height == 0 {
		o.Height = d.Height
	}
	if o.Scale == 0 {
		o.Scale = d.Scale
	}
	if err := CheckSize(o.Width, o.Height, o.Scale); err != nil {
		return o, err
	}
	return o, nil
}

// CheckSize reports whether a w x h canvas can be rendered at scale without
// exceeding MaxCanvasSide or MaxPixelSide.
func CheckSize(w, h, scale int) error {
	if w > MaxCanvasSide || h > MaxCanvasSide {
		return fmt.Errorf("canvas %dx%d exceeds %d per side", w, h, MaxCanvasSide)
	}
	if w*scale > MaxPixelSide || h*scale > MaxPixelSide {
		return fmt.Errorf("export %dx%d at %dx exceeds %d px per side", w, h, scale, MaxPixelSide)
	}
	return nil
}
