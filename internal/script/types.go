/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package script replays recorded pointer and toolbar events against a
// drawing session. Scripts are YAML:
//
//	name: smiley
//	events:
//	  - {op: color, value: Indigo}
//	  - {op: down, at: [10, 10]}
//	  - {op: move, path: [[20, 12], [30, 10]]}
//	  - {op: up, at: [30, 10]}
//	  - {op: sticker, value: "😀"}
//	  - {op: down, at: [50, 50]}
//	  - {op: up, at: [50, 50]}
package script

import "fmt"

// Op names one scripted action.
type Op string

const (
	OpEnter   Op = "enter"
	OpLeave   Op = "leave"
	OpDown    Op = "down"
	OpMove    Op = "move"
	OpUp      Op = "up"
	OpUndo    Op = "undo"
	OpRedo    Op = "redo"
	OpClear   Op = "clear"
	OpReset   Op = "reset"
	OpMarker  Op = "marker"
	OpColor   Op = "color"
	OpSticker Op = "sticker"
	OpCustom  Op = "custom"
)

var knownOps = map[Op]bool{
	OpEnter: true, OpLeave: true, OpDown: true, OpMove: true, OpUp: true,
	OpUndo: true, OpRedo: true, OpClear: true, OpReset: true,
	OpMarker: true, OpColor: true, OpSticker: true, OpCustom: true,
}

// Event is a single scripted step. At is an [x, y] pair; Path lists
// several points for move. Value carries the color, glyph or custom
// sticker text.
type Event struct {
	Op    Op          `yaml:"op"`
	At    []float64   `yaml:"at,omitempty"`
	Path  [][]float64 `yaml:"path,omitempty"`
	Width float64     `yaml:"width,omitempty"`
	Value string      `yaml:"value,omitempty"`

	Line int `yaml:"-"` // 1-based line in the source
}

type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Script is a parsed event script.
type Script struct {
	Name   string
	Canvas Canvas
	Events []Event
}

// Error represents a parse or replay problem with position context.
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e Error) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Message)
}
