/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"gosketchpad/internal/config"
	"gosketchpad/internal/crash"
	"gosketchpad/internal/draw"
	"gosketchpad/internal/export"
	applog "gosketchpad/internal/log"
	"gosketchpad/internal/raster"
	"gosketchpad/internal/render"
	"gosketchpad/internal/script"
	"gosketchpad/internal/session"
	"gosketchpad/internal/ui"
	"gosketchpad/internal/version"
)

func usage() {
	fmt.Println("GoSketchpad")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  gosketchpad version|-v|--version            Show version")
	fmt.Println("  gosketchpad ui                               Launch desktop UI (build with -tags fyne for full UI)")
	fmt.Println("  gosketchpad replay [--pdf] <script> <dir>    Replay a YAML event script and export to <dir>")
	fmt.Println("  gosketchpad config [init]                    Print the effective config, or write the defaults")
}

func main() {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Defaults()
	}
	applog.Init(cfg.LogOptions())
	l := applog.WithComponent("cli")
	if cfgErr != nil {
		l.Warn("config invalid, using defaults", slog.Any("err", cfgErr))
	}
	target := &crash.Target{Dir: cfg.ExportDir(), Export: cfg.ExportOptions()}
	defer crash.Recover(target)
	if cfg.Canvas.Font != "" {
		if err := raster.DefaultFonts.LoadTTF(cfg.Canvas.Font); err != nil {
			l.Warn("sticker font not loaded, using Go Mono", slog.Any("err", err))
		}
	}

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("GoSketchpad")
			fmt.Println(version.String())
			return
		case "ui":
			if err := ui.Run(cfg); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		case "replay":
			if err := replay(cfg, target, args[2:]); err != nil {
				l.Error("replay failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		case "config":
			if err := configCmd(cfg, args[2:]); err != nil {
				l.Error("config failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		}
	}

	usage()
}

func replay(cfg config.AppConfig, target *crash.Target, args []string) error {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	withPDF := fs.Bool("pdf", false, "also write a PDF")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		usage()
		return fmt.Errorf("replay requires <script> and <dir>")
	}
	scriptPath, outDir := fs.Arg(0), fs.Arg(1)

	s, err := script.LoadFile(scriptPath)
	if err != nil {
		return err
	}
	opt := cfg.ExportOptions()
	if s.Canvas.Width > 0 {
		opt.Width = s.Canvas.Width
	}
	if s.Canvas.Height > 0 {
		opt.Height = s.Canvas.Height
	}

	sess := session.New(session.Options{Presets: cfg.Presets()})
	target.Session = sess
	target.Export = opt

	// mirror the live window so replays exercise the same repaint path
	view := render.NewView(raster.New(opt.Width, opt.Height, 1))
	view.Attach(sess)
	defer view.Detach()

	res := script.Replay(s, sess)
	for _, r := range res.Rejected {
		fmt.Println("Rejected:", r.Error())
	}

	formats := []string{"png"}
	if *withPDF {
		formats = append(formats, "pdf")
	}
	paths, err := export.BatchExport(sess.Items(), export.BatchOptions{Formats: formats, OutDir: outDir, Options: opt})
	if err != nil {
		return err
	}
	n, undone, points := sess.History().Stats()
	fmt.Printf("Replayed %d events (%d rejected), %d frames\n", res.Applied, len(res.Rejected), view.Frames())
	fmt.Printf("Drawing: %d drawables, %d undone, %d points\n", n, undone, points)
	if ext := draw.Extent(sess.Items()); !ext.Empty() {
		fmt.Printf("Extent: %.0fx%.0f at (%.0f,%.0f)\n", ext.W, ext.H, ext.X, ext.Y)
	}
	for _, p := range paths {
		fmt.Println("Wrote", p)
	}
	return nil
}

func configCmd(cfg config.AppConfig, args []string) error {
	if len(args) > 0 && args[0] == "init" {
		if err := config.Save(config.Defaults()); err != nil {
			return err
		}
		path, _ := config.ConfigPath()
		fmt.Println("Wrote defaults to", path)
		return nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	var overridden []string
	for _, key := range []string{"export.dir", "export.scale", "canvas.width", "canvas.height", "canvas.font", "logging.level", "logging.format", "logging.source", "logging.file"} {
		if env, ok := config.EnvOverrideFor(key); ok {
			overridden = append(overridden, key+" <- "+env)
		}
	}
	if len(overridden) > 0 {
		fmt.Println("# env overrides: " + strings.Join(overridden, ", "))
	}
	return nil
}
