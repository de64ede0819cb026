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
	"path/filepath"
	"strings"

	"gosketchpad/internal/draw"
)

// PDFFileName is the name BatchExport gives PDF output.
const PDFFileName = "sketch.pdf"

// PresetName represents a named export preset.
type PresetName string

const (
	PresetWeb   PresetName = "web"
	PresetPrint PresetName = "print"
)

// BatchOptions controls exporting one drawing in several formats.
//
// Path semantics:
//   - OutDir empty means the preset name, resolved relative to the working directory.
//   - The web preset always renders at scale 1.
//   - PNG goes to OutDir/pictureDownload.png, PDF to OutDir/sketch.pdf.
type BatchOptions struct {
	Preset  PresetName
	Formats []string // allowed: png, pdf; empty means preset defaults
	OutDir  string
	Options Options
}

// BatchExport writes items in every requested format and returns the paths
// written, in format order.
func BatchExport(items []draw.Drawable, opt BatchOptions) ([]string, error) {
	formats := opt.Formats
	if len(formats) == 0 {
		formats = presetDefaultFormats(opt.Preset)
	}
	out := opt.OutDir
	if out == "" {
		out = string(opt.Preset)
	}
	if out == "" {
		out = "."
	}
	eo := opt.Options
	// web keeps the logical canvas size
	if opt.Preset == PresetWeb {
		eo.Scale = 1
	}

	var written []string
	for _, f := range formats {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "png":
			p, err := ExportPNG(out, items, eo)
			if err != nil {
				return written, fmt.Errorf("png: %w", err)
			}
			written = append(written, p)
		case "pdf":
			p := filepath.Join(out, PDFFileName)
			if err := ExportPDF(p, items, eo); err != nil {
				return written, fmt.Errorf("pdf: %w", err)
			}
			written = append(written, p)
		default:
			return written, fmt.Errorf("unknown format: %s", f)
		}
	}
	return written, nil
}

func presetDefaultFormats(p PresetName) []string {
	switch p {
	case PresetPrint:
		return []string{"png", "pdf"}
	default:
		return []string{"png"}
	}
}
