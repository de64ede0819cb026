/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"gosketchpad/internal/draw"
	"gosketchpad/internal/export"
	applog "gosketchpad/internal/log"
	"gosketchpad/internal/session"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.
// Unknown fields are ignored on unmarshal.

type CanvasConfig struct {
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
	Font   string `yaml:"font" json:"font"` // optional TTF preferred for sticker text, e.g. an emoji font
}

type ExportConfig struct {
	Dir   string `yaml:"dir" json:"dir"`     // empty means ~/Downloads, else the working directory
	Scale int    `yaml:"scale" json:"scale"` // PNG pixel multiplier
}

type ColorConfig struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"` // CSS name or #rrggbb
}

type ToolsConfig struct {
	Widths       []float64     `yaml:"widths" json:"widths,omitempty"`
	Colors       []ColorConfig `yaml:"colors" json:"colors,omitempty"`
	Stickers     []string      `yaml:"stickers" json:"stickers,omitempty"`
	DefaultColor string        `yaml:"default_color" json:"default_color,omitempty"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	Source bool   `yaml:"source" json:"source"`
	File   string `yaml:"file" json:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version" json:"config_version"`
	Canvas        CanvasConfig  `yaml:"canvas" json:"canvas"`
	Export        ExportConfig  `yaml:"export" json:"export"`
	Tools         ToolsConfig   `yaml:"tools" json:"tools"`
	Logging       LoggingConfig `yaml:"logging" json:"logging"`
}

// Defaults returns the application defaults. Tool palettes mirror
// session.DefaultPresets.
func Defaults() AppConfig {
	p := session.DefaultPresets()
	tools := ToolsConfig{
		Widths:       append([]float64(nil), p.Widths...),
		Stickers:     append([]string(nil), p.Stickers...),
		DefaultColor: p.DefaultColor.String(),
	}
	for _, c := range p.Colors {
		tools.Colors = append(tools.Colors, ColorConfig{Label: c.Label, Value: c.Color.String()})
	}
	eo := export.Defaults()
	return AppConfig{
		ConfigVersion: 1,
		Canvas:        CanvasConfig{Width: eo.Width, Height: eo.Height},
		Export:        ExportConfig{Dir: "", Scale: eo.Scale},
		Tools:         tools,
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvConfigPath   = "GSP_CONFIG"
	EnvExportDir    = "GSP_EXPORT_DIR"
	EnvExportScale  = "GSP_EXPORT_SCALE"
	EnvCanvasWidth  = "GSP_CANVAS_WIDTH"
	EnvCanvasHeight = "GSP_CANVAS_HEIGHT"
	EnvCanvasFont   = "GSP_CANVAS_FONT"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "GSP_LOG_LEVEL"
	EnvLogFormat = "GSP_LOG_FORMAT"
	EnvLogSource = "GSP_LOG_SOURCE"
	EnvLogFile   = "GSP_LOG_FILE"
)

// ConfigPath returns the per-user config file path. GSP_CONFIG overrides it.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "GoSketchpad")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "GoSketchpad")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "gosketchpad")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, merges
// environment overrides and validates the result. On a validation error the
// merged config is still returned so callers can report and fall back.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			applog.WithComponent("config").Warn("ignoring unreadable config", slog.String("path", path), slog.Any("err", err))
		} else {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Canvas.Width != 0 {
		dst.Canvas.Width = src.Canvas.Width
	}
	if src.Canvas.Height != 0 {
		dst.Canvas.Height = src.Canvas.Height
	}
	if strings.TrimSpace(src.Canvas.Font) != "" {
		dst.Canvas.Font = strings.TrimSpace(src.Canvas.Font)
	}
	if strings.TrimSpace(src.Export.Dir) != "" {
		dst.Export.Dir = strings.TrimSpace(src.Export.Dir)
	}
	if src.Export.Scale != 0 {
		dst.Export.Scale = src.Export.Scale
	}
	// palettes replace the defaults wholesale
	if len(src.Tools.Widths) > 0 {
		dst.Tools.Widths = src.Tools.Widths
	}
	if len(src.Tools.Colors) > 0 {
		dst.Tools.Colors = src.Tools.Colors
	}
	if len(src.Tools.Stickers) > 0 {
		dst.Tools.Stickers = src.Tools.Stickers
	}
	if strings.TrimSpace(src.Tools.DefaultColor) != "" {
		dst.Tools.DefaultColor = strings.TrimSpace(src.Tools.DefaultColor)
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	if src.Logging.Source {
		dst.Logging.Source = true
	}
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvExportDir)); v != "" {
		cfg.Export.Dir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportScale)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Export.Scale = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvCanvasWidth)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Canvas.Width = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvCanvasHeight)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Canvas.Height = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvCanvasFont)); v != "" {
		cfg.Canvas.Font = v
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	env := map[string]string{
		"export.dir":     EnvExportDir,
		"export.scale":   EnvExportScale,
		"canvas.width":   EnvCanvasWidth,
		"canvas.height":  EnvCanvasHeight,
		"canvas.font":    EnvCanvasFont,
		"logging.level":  EnvLogLevel,
		"logging.format": EnvLogFormat,
		"logging.source": EnvLogSource,
		"logging.file":   EnvLogFile,
	}[key]
	if env != "" && os.Getenv(env) != "" {
		return env, true
	}
	return "", false
}

// Presets converts the tool palettes for a drawing session. Entries that do
// not parse are skipped; Validate reports them.
func (c AppConfig) Presets() session.Presets {
	p := session.Presets{
		Widths:   append([]float64(nil), c.Tools.Widths...),
		Stickers: append([]string(nil), c.Tools.Stickers...),
	}
	for _, cc := range c.Tools.Colors {
		if col, ok := draw.ParseColor(cc.Value); ok {
			p.Colors = append(p.Colors, session.ColorPreset{Label: cc.Label, Color: col})
		}
	}
	if col, ok := draw.ParseColor(c.Tools.DefaultColor); ok {
		p.DefaultColor = col
	}
	return p
}

// ExportOptions returns the canvas size and PNG scale for exporters.
func (c AppConfig) ExportOptions() export.Options {
	return export.Options{Width: c.Canvas.Width, Height: c.Canvas.Height, Scale: c.Export.Scale}
}

// ExportDir resolves where exports land: the configured directory, else the
// user's Downloads folder when it exists, else the working directory.
func (c AppConfig) ExportDir() string {
	if c.Export.Dir != "" {
		return c.Export.Dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		dl := filepath.Join(home, "Downloads")
		if st, err := os.Stat(dl); err == nil && st.IsDir() {
			return dl
		}
	}
	return "."
}

// LogOptions maps the logging section onto logger options.
func (c AppConfig) LogOptions() applog.Options {
	return applog.Options{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		AddSource: c.Logging.Source,
		File:      c.Logging.File,
	}
}
