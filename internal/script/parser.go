/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"gosketchpad/internal/export"
)

type document struct {
	Name   string      `yaml:"name"`
	Canvas yaml.Node   `yaml:"canvas"`
	Events []yaml.Node `yaml:"events"`
}

// Parse decodes a YAML script. Every malformed event is reported with its
// line; valid events are kept so callers can show all problems at once.
func Parse(input []byte) (Script, []Error) {
	var doc document
	if err := yaml.Unmarshal(input, &doc); err != nil {
		return Script{}, []Error{{Line: 0, Column: 1, Message: err.Error()}}
	}
	s := Script{Name: strings.TrimSpace(doc.Name)}
	var errs []Error
	if doc.Canvas.Kind != 0 {
		var c Canvas
		if err := doc.Canvas.Decode(&c); err != nil {
			errs = append(errs, Error{Line: doc.Canvas.Line, Column: doc.Canvas.Column, Message: err.Error()})
		} else if msg := checkCanvas(c); msg != "" {
			errs = append(errs, Error{Line: doc.Canvas.Line, Column: doc.Canvas.Column, Message: msg})
		} else {
			s.Canvas = c
		}
	}
	for i := range doc.Events {
		n := &doc.Events[i]
		var ev Event
		if err := n.Decode(&ev); err != nil {
			errs = append(errs, Error{Line: n.Line, Column: n.Column, Message: err.Error()})
			continue
		}
		ev.Op = Op(strings.ToLower(strings.TrimSpace(string(ev.Op))))
		ev.Line = n.Line
		if msg := check(ev); msg != "" {
			errs = append(errs, Error{Line: n.Line, Column: n.Column, Message: msg})
			continue
		}
		s.Events = append(s.Events, ev)
	}
	return s, errs
}

// checkCanvas accepts zero sides, which mean the configured size.
func checkCanvas(c Canvas) string {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Sprintf("canvas %dx%d must not be negative", c.Width, c.Height)
	}
	if c.Width > export.MaxCanvasSide || c.Height > export.MaxCanvasSide {
		return fmt.Sprintf("canvas %dx%d exceeds %d per side", c.Width, c.Height, export.MaxCanvasSide)
	}
	return ""
}

func check(ev Event) string {
	if !knownOps[ev.Op] {
		return fmt.Sprintf("unknown op %q", ev.Op)
	}
	switch ev.Op {
	case OpEnter, OpDown, OpUp:
		if len(ev.At) != 2 {
			return fmt.Sprintf("%s needs at: [x, y]", ev.Op)
		}
	case OpMove:
		if len(ev.At) == 0 && len(ev.Path) == 0 {
			return "move needs at or path"
		}
		if len(ev.At) != 0 && len(ev.At) != 2 {
			return "move at must be [x, y]"
		}
		for _, p := range ev.Path {
			if len(p) != 2 {
				return "move path entries must be [x, y]"
			}
		}
	case OpMarker:
		if ev.Width < 0 {
			return "marker width must not be negative"
		}
	case OpColor, OpSticker:
		if strings.TrimSpace(ev.Value) == "" {
			return fmt.Sprintf("%s needs a value", ev.Op)
		}
	}
	return ""
}

// LoadFile reads and parses a script file. Parse errors are joined.
func LoadFile(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	s, perrs := Parse(data)
	if len(perrs) > 0 {
		errs := make([]error, len(perrs))
		for i, e := range perrs {
			errs[i] = e
		}
		return s, fmt.Errorf("parse %s: %w", path, errors.Join(errs...))
	}
	return s, nil
}
