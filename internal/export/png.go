/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gosketchpad/internal/draw"
	applog "gosketchpad/internal/log"
	"gosketchpad/internal/raster"
)

// RenderImage draws items oldest first onto a fresh transparent image of
// Width*Scale by Height*Scale pixels. The cursor preview is never part of
// an export.
func RenderImage(items []draw.Drawable, opt Options) (*image.RGBA, error) {
	opt, err := opt.withDefaults()
	if err != nil {
		return nil, err
	}
	c := raster.New(opt.Width, opt.Height, opt.Scale)
	for _, d := range items {
		d.Render(c)
	}
	return c.Image(), nil
}

// WritePNG renders items and PNG-encodes the result to w.
func WritePNG(w io.Writer, items []draw.Drawable, opt Options) error {
	img, err := RenderImage(items, opt)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// ExportPNG writes items to dir/pictureDownload.png, replacing any earlier
// export, and returns the file path.
func ExportPNG(dir string, items []draw.Drawable, opt Options) (string, error) {
	if dir == "" {
		dir = "."
	}
	opt, err := opt.withDefaults()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure out dir: %w", err)
	}
	name := filepath.Join(dir, PNGFileName)
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("create png: %w", err)
	}
	if err := WritePNG(f, items, opt); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("close png: %w", err)
	}
	applog.WithComponent("export").Info("png exported", slog.String("path", name), slog.Int("drawables", len(items)))
	return name, nil
}
