/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gosketchpad/internal/draw"
)

// isolate points the config path at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(EnvConfigPath, p)
	return p
}

func TestDefaultsValidate(t *testing.T) {
	if err := Validate(Defaults()); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Export.Scale != 4 || cfg.Canvas.Width != 256 {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
	p := cfg.Presets()
	if len(p.Colors) != 6 || p.Colors[4].Label != "Indigo" || p.Colors[4].Color.Name != "purple" {
		t.Fatalf("color presets not carried over: %#v", p.Colors)
	}
	if p.DefaultColor != draw.White {
		t.Fatalf("default color = %v", p.DefaultColor)
	}
}

func TestEnvOverridesExport(t *testing.T) {
	isolate(t)
	t.Setenv(EnvExportDir, "/tmp/sketches")
	t.Setenv(EnvExportScale, "2")
	t.Setenv(EnvCanvasFont, "/fonts/NotoEmoji-Regular.ttf")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Export.Dir != "/tmp/sketches" || cfg.ExportDir() != "/tmp/sketches" {
		t.Fatalf("Export.Dir = %q", cfg.Export.Dir)
	}
	if cfg.Canvas.Font != "/fonts/NotoEmoji-Regular.ttf" {
		t.Fatalf("Canvas.Font = %q", cfg.Canvas.Font)
	}
	if got := cfg.ExportOptions().Scale; got != 2 {
		t.Fatalf("scale = %d, want 2", got)
	}
	if env, ok := EnvOverrideFor("export.scale"); !ok || env != EnvExportScale {
		t.Fatalf("EnvOverrideFor(export.scale) = %q, %v", env, ok)
	}
	if _, ok := EnvOverrideFor("canvas.width"); ok {
		t.Fatalf("canvas.width should not be overridden")
	}
}

func TestEnvOverrideInvalidScaleFailsValidation(t *testing.T) {
	isolate(t)
	t.Setenv(EnvExportScale, "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error for scale 0")
	}
}

func TestSaveLoadRoundTripFile(t *testing.T) {
	path := isolate(t)
	cfg := Defaults()
	cfg.Canvas = CanvasConfig{Width: 320, Height: 200}
	cfg.Tools.Stickers = []string{"★", "♥"}
	cfg.Tools.Colors = []ColorConfig{{Label: "Teal", Value: "#008080"}}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got.Canvas.Width != 320 || len(got.Tools.Stickers) != 2 || got.Tools.Colors[0].Value != "#008080" {
		t.Fatalf("file values not merged: %#v", got)
	}
	if p := got.Presets(); p.Colors[0].Color.G != 0x80 {
		t.Fatalf("teal not parsed: %#v", p.Colors[0])
	}
}

func TestUnreadableFileIsIgnored(t *testing.T) {
	path := isolate(t)
	if err := os.WriteFile(path, []byte("canvas: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Canvas.Width != 256 {
		t.Fatalf("defaults not kept: %#v", cfg.Canvas)
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Defaults()
	cfg.Export.Scale = 99
	cfg.Logging.Format = "xml"
	cfg.Tools.Widths = []float64{-1}
	cfg.Tools.Colors = []ColorConfig{{Label: "Mystery", Value: "not-a-color"}}
	err := Validate(cfg)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"scale", "format", "widths", "not-a-color"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error %q does not mention %q", msg, want)
		}
	}
}

func TestValidateRejectsOversizedExport(t *testing.T) {
	cfg := Defaults()
	cfg.Canvas.Width, cfg.Canvas.Height = 8192, 8192
	cfg.Export.Scale = 16
	err := Validate(cfg)
	if err == nil {
		t.Fatalf("expected error for 8192x8192 at 16x")
	}
	if !strings.Contains(err.Error(), "export.scale") {
		t.Fatalf("error %q does not name the scale", err)
	}
	cfg.Export.Scale = 2
	if err := Validate(cfg); err != nil {
		t.Fatalf("8192x8192 at 2x should be allowed: %v", err)
	}
}

func TestMergeKeepsLoggingSourceWhenFileOmitsIt(t *testing.T) {
	dst := Defaults()
	dst.Logging.Source = true
	mergeInto(&dst, &AppConfig{})
	if !dst.Logging.Source {
		t.Fatalf("empty logging section reset source")
	}
}

func TestMergeIncludesLogging(t *testing.T) {
	dst := Defaults()
	src := AppConfig{}
	src.Logging.Level = " DEBUG "
	src.Logging.Format = "json"
	src.Logging.Source = true
	src.Logging.File = "/tmp/gsp.log"
	mergeInto(&dst, &src)
	if dst.Logging.Level != "debug" || dst.Logging.Format != "json" || !dst.Logging.Source || dst.Logging.File != "/tmp/gsp.log" {
		t.Fatalf("logging fields not merged correctly: %#v", dst.Logging)
	}
	if len(dst.Tools.Widths) != 2 {
		t.Fatalf("empty palettes must keep defaults: %#v", dst.Tools)
	}
	lo := dst.LogOptions()
	if lo.Level != "debug" || !lo.AddSource || lo.File != "/tmp/gsp.log" {
		t.Fatalf("LogOptions = %#v", lo)
	}
}

func TestEnvOverridesLogging(t *testing.T) {
	isolate(t)
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvLogSource, "1")
	t.Setenv(EnvLogFile, "/tmp/gsp.log")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Format != "json" || !cfg.Logging.Source || cfg.Logging.File != "/tmp/gsp.log" {
		t.Fatalf("env overrides not applied to logging: %#v", cfg.Logging)
	}
}
