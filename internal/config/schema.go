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

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"gosketchpad/internal/draw"
	"gosketchpad/internal/export"
)

// schema describes the structural rules of AppConfig. Color strings are
// checked separately since JSON Schema cannot know the color names.
const schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["config_version"],
  "properties": {
    "config_version": {"type": "integer", "minimum": 1},
    "canvas": {
      "type": "object",
      "properties": {
        "width":  {"type": "integer", "minimum": 1, "maximum": 8192},
        "height": {"type": "integer", "minimum": 1, "maximum": 8192},
        "font":   {"type": "string"}
      }
    },
    "export": {
      "type": "object",
      "properties": {
        "dir":   {"type": "string"},
        "scale": {"type": "integer", "minimum": 1, "maximum": 16}
      }
    },
    "tools": {
      "type": "object",
      "properties": {
        "widths":   {"type": "array", "items": {"type": "number", "exclusiveMinimum": 0}},
        "stickers": {"type": "array", "items": {"type": "string", "minLength": 1}},
        "default_color": {"type": "string"},
        "colors": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["label", "value"],
            "properties": {
              "label": {"type": "string", "minLength": 1},
              "value": {"type": "string", "minLength": 1}
            }
          }
        }
      }
    },
    "logging": {
      "type": "object",
      "properties": {
        "level":  {"enum": ["debug", "info", "warn", "warning", "error"]},
        "format": {"enum": ["console", "json"]},
        "source": {"type": "boolean"},
        "file":   {"type": "string"}
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(schema)

// Validate checks cfg against the config schema and that every color
// parses. All problems are reported together.
func Validate(cfg AppConfig) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(cfg))
	if err != nil {
		return fmt.Errorf("schema validate: %w", err)
	}
	var errs []error
	for _, e := range result.Errors() {
		errs = append(errs, errors.New(e.String()))
	}
	if cfg.Canvas.Width > 0 && cfg.Canvas.Height > 0 && cfg.Export.Scale > 0 {
		if err := export.CheckSize(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Export.Scale); err != nil {
			errs = append(errs, fmt.Errorf("canvas/export.scale: %w", err))
		}
	}
	for i, c := range cfg.Tools.Colors {
		if _, ok := draw.ParseColor(c.Value); !ok {
			errs = append(errs, fmt.Errorf("tools.colors.%d.value: unknown color %q", i, c.Value))
		}
	}
	if c := cfg.Tools.DefaultColor; c != "" {
		if _, ok := draw.ParseColor(c); !ok {
			errs = append(errs, fmt.Errorf("tools.default_color: unknown color %q", c))
		}
	}
	return errors.Join(errs...)
}
