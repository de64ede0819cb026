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
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/gofont/gomono"

	"gosketchpad/internal/draw"
	applog "gosketchpad/internal/log"
)

const pdfFont = "gomono"

// pdfSurface implements draw.Surface on a gofpdf page. Units are points
// with the canvas mapped 1:1; Scale does not apply to vector output.
type pdfSurface struct {
	pdf    *gofpdf.Fpdf
	family string
	path   [][]draw.Point
}

var _ draw.Surface = (*pdfSurface)(nil)

func newPDFSurface(w, h float64) *pdfSurface {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetTitle("Sketch", true)
	pdf.SetAuthor("gosketchpad", false)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	// Go Mono keeps glyph metrics in line with the raster export; Courier
	// is the fallback when the font cannot be embedded.
	family := pdfFont
	pdf.AddUTF8FontFromBytes(pdfFont, "", gomono.TTF)
	if err := pdf.Error(); err != nil {
		applog.WithComponent("export").Warn("pdf font embed failed", slog.Any("err", err))
		pdf.ClearError()
		family = "Courier"
	}
	pdf.AddPage()
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	return &pdfSurface{pdf: pdf, family: family}
}

// Clear is a no-op: a new page is already blank.
func (s *pdfSurface) Clear() {}

func (s *pdfSurface) BeginPath() { s.path = s.path[:0] }

func (s *pdfSurface) MoveTo(x, y float64) {
	s.path = append(s.path, []draw.Point{draw.Pt(x, y)})
}

func (s *pdfSurface) LineTo(x, y float64) {
	if len(s.path) == 0 {
		s.MoveTo(x, y)
		return
	}
	last := len(s.path) - 1
	s.path[last] = append(s.path[last], draw.Pt(x, y))
}

// StrokePath emits the collected subpaths. Graphics state is set before
// path construction starts, as PDF requires.
func (s *pdfSurface) StrokePath(width float64, c draw.Color) {
	s.pdf.SetLineWidth(width)
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	for _, sub := range s.path {
		if len(sub) < 2 {
			continue
		}
		s.pdf.MoveTo(sub[0].X, sub[0].Y)
		for _, p := range sub[1:] {
			s.pdf.LineTo(p.X, p.Y)
		}
		s.pdf.DrawPath("D")
	}
}

func (s *pdfSurface) FillText(text string, x, y, size float64, c draw.Color) {
	s.pdf.SetFont(s.family, "", size)
	s.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	s.pdf.Text(x, y, text)
}

// ExportPDF writes items as a single-page vector PDF at path.
func ExportPDF(path string, items []draw.Drawable, opt Options) error {
	opt, err := opt.withDefaults()
	if err != nil {
		return err
	}
	s := newPDFSurface(float64(opt.Width), float64(opt.Height))
	for _, d := range items {
		d.Render(s)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := s.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	applog.WithComponent("export").Info("pdf exported", slog.String("path", path), slog.Int("drawables", len(items)))
	return nil
}
