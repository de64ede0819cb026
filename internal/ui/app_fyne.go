//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */
package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"gosketchpad/internal/config"
	"gosketchpad/internal/crash"
	"gosketchpad/internal/export"
	applog "gosketchpad/internal/log"
	"gosketchpad/internal/session"
	"gosketchpad/internal/version"
)

// Run starts the Fyne-based sketch pad window.
func Run(cfg config.AppConfig) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI")

	target := &crash.Target{Dir: cfg.ExportDir(), Export: cfg.ExportOptions()}
	defer crash.Recover(target)

	sess := session.New(session.Options{Presets: cfg.Presets()})
	target.Session = sess

	fyneApp := app.NewWithID("gosketchpad")
	w := fyneApp.NewWindow("Sketchpad " + version.String())
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", 720)
	winH := prefs.IntWithFallback("window.height", 560)
	if winW < 480 {
		winW = 480
	}
	if winH < 400 {
		winH = 400
	}
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	status := widget.NewLabel("Ready")
	pad := NewSketchPad(sess, cfg.Canvas.Width, cfg.Canvas.Height)
	tb := newToolbar(sess, w, status, cfg)

	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		sess.Undo()
	})
	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		sess.Redo()
	})

	center := container.NewCenter(pad)
	w.SetContent(container.NewBorder(tb.top, container.NewVBox(tb.stickers, status), nil, nil, center))

	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		n, _, _ := sess.History().Stats()
		l.InfoContext(sess.Context(), "closing", slog.Int("drawables", n))
		w.Close()
	})

	w.ShowAndRun()
	return nil
}

// toolbar holds the palette rows. Sticker buttons grow as custom stickers
// are created.
type toolbar struct {
	top      fyne.CanvasObject
	stickers *fyne.Container
}

func newToolbar(sess *session.Session, w fyne.Window, status *widget.Label, cfg config.AppConfig) *toolbar {
	tb := &toolbar{stickers: container.NewHBox()}
	presets := sess.Presets()

	undoBtn := widget.NewButton("Undo", sess.Undo)
	redoBtn := widget.NewButton("Redo", sess.Redo)
	clearBtn := widget.NewButton("Clear", func() {
		sess.Clear()
		status.SetText("Cleared.")
	})

	var widths []fyne.CanvasObject
	for i, wd := range presets.Widths {
		label := fmt.Sprintf("Marker %g", wd)
		switch i {
		case 0:
			label = "Thin"
		case 1:
			label = "Thick"
		}
		widths = append(widths, widget.NewButton(label, func() {
			sess.SelectMarker(wd)
			status.SetText(fmt.Sprintf("Marker %gpx", wd))
		}))
	}

	var colors []fyne.CanvasObject
	for _, c := range presets.Colors {
		colors = append(colors, widget.NewButton(c.Label, func() {
			sess.SelectColor(c.Color)
			status.SetText("Color: " + c.Label)
		}))
	}

	addSticker := func(g string) {
		tb.stickers.Add(widget.NewButton(g, func() {
			sess.SelectSticker(g)
			status.SetText("Sticker: " + g)
		}))
	}
	for _, g := range presets.Stickers {
		addSticker(g)
	}

	createBtn := widget.NewButton("Create Sticker", func() {
		entry := widget.NewEntry()
		entry.SetPlaceHolder("Text or emoji")
		dialog.ShowForm("Create Sticker", "Add", "Cancel", []*widget.FormItem{
			widget.NewFormItem("Sticker", entry),
		}, func(ok bool) {
			if !ok {
				return
			}
			g, err := sess.AddCustomSticker(entry.Text)
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			addSticker(g)
			tb.stickers.Refresh()
			status.SetText("Sticker added: " + g)
		}, w)
	})

	exportBtn := widget.NewButton("Export PNG", func() {
		path, err := export.ExportPNG(cfg.ExportDir(), sess.Items(), cfg.ExportOptions())
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		status.SetText("Exported: " + path)
	})

	row := []fyne.CanvasObject{undoBtn, redoBtn, clearBtn, widget.NewSeparator()}
	row = append(row, widths...)
	row = append(row, widget.NewSeparator())
	row = append(row, colors...)
	row = append(row, widget.NewSeparator(), createBtn, exportBtn)
	tb.top = container.NewHScroll(container.NewHBox(row...))
	return tb
}
