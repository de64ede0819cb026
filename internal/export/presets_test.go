/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gosketchpad/internal/draw"
)

func sampleItems() []draw.Drawable {
	st := draw.NewSticker("*")
	st.MoveTo(draw.Pt(20, 20))
	return []draw.Drawable{redStroke(4, draw.Pt(2, 2), draw.Pt(30, 30)), st}
}

func TestBatchExport_WebPreset(t *testing.T) {
	root := t.TempDir()
	paths, err := BatchExport(sampleItems(), BatchOptions{Preset: PresetWeb, OutDir: filepath.Join(root, "web")})
	if err != nil {
		t.Fatalf("batch export web: %v", err)
	}
	if len(paths) != 1 || paths[0] != filepath.Join(root, "web", PNGFileName) {
		t.Fatalf("paths = %v", paths)
	}
	f, err := os.Open(paths[0])
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// web keeps the logical size
	if cfg.Width != 256 || cfg.Height != 256 {
		t.Fatalf("size = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestBatchExport_WebPresetIgnoresScale(t *testing.T) {
	opt := BatchOptions{Preset: PresetWeb, OutDir: t.TempDir(), Options: Options{Width: 40, Height: 30, Scale: 4}}
	paths, err := BatchExport(sampleItems(), opt)
	if err != nil {
		t.Fatalf("batch export web: %v", err)
	}
	f, err := os.Open(paths[0])
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 30 {
		t.Fatalf("size = %dx%d, want 40x30", cfg.Width, cfg.Height)
	}
}

func TestBatchExport_PrintPreset(t *testing.T) {
	root := t.TempDir()
	paths, err := BatchExport(sampleItems(), BatchOptions{Preset: PresetPrint, OutDir: root})
	if err != nil {
		t.Fatalf("batch export print: %v", err)
	}
	checks := []string{
		filepath.Join(root, PNGFileName),
		filepath.Join(root, PDFFileName),
	}
	if len(paths) != len(checks) {
		t.Fatalf("paths = %v", paths)
	}
	for _, p := range checks {
		st, err := os.Stat(p)
		if err != nil {
			t.Fatalf("missing %s: %v", p, err)
		}
		if st.Size() <= 0 {
			t.Fatalf("empty file: %s", p)
		}
	}
}

func TestBatchExport_UnknownFormat(t *testing.T) {
	if _, err := BatchExport(nil, BatchOptions{Formats: []string{"gif"}, OutDir: t.TempDir()}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
