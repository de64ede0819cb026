/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */
package undo

import "gosketchpad/internal/draw"

// Config controls depth caps.
type Config struct {
	// MaxDepth limits the number of committed drawables kept (0 means unlimited).
	// The oldest entries are dropped first.
	MaxDepth int
}

// History is the undo/redo log of committed drawables. A drawable lives in
// exactly one of the two stacks; moving between them transfers the same
// value, never a copy.
//
// History is not safe for concurrent use; it belongs to the UI thread.
type History struct {
	cfg  Config
	undo []draw.Drawable
	redo []draw.Drawable
}

func NewHistory(cfg Config) *History {
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = 0
	}
	return &History{cfg: cfg}
}

// Commit pushes d and clears the redo stack. Redo is only available for an
// unbroken chain of undos since the last commit.
func (h *History) Commit(d draw.Drawable) {
	h.undo = append(h.undo, d)
	// any new change invalidates redo
	clearStack(&h.redo)
	h.enforceCaps()
}

// Undo moves the most recent drawable to the redo stack.
func (h *History) Undo() (draw.Drawable, bool) {
	n := len(h.undo)
	if n == 0 {
		return nil, false
	}
	d := h.undo[n-1]
	h.undo[n-1] = nil
	h.undo = h.undo[:n-1]
	h.redo = append(h.redo, d)
	return d, true
}

// Redo moves the most recently undone drawable back onto the history.
func (h *History) Redo() (draw.Drawable, bool) {
	n := len(h.redo)
	if n == 0 {
		return nil, false
	}
	d := h.redo[n-1]
	h.redo[n-1] = nil
	h.redo = h.redo[:n-1]
	h.undo = append(h.undo, d)
	h.enforceCaps()
	return d, true
}

// Clear empties both stacks.
func (h *History) Clear() {
	clearStack(&h.undo)
	clearStack(&h.redo)
}

// Items returns the committed drawables oldest first.
func (h *History) Items() []draw.Drawable { return append([]draw.Drawable(nil), h.undo...) }

// RedoItems returns the redo stack bottom to top; the last element is what
// the next Redo restores.
func (h *History) RedoItems() []draw.Drawable { return append([]draw.Drawable(nil), h.redo...) }

func (h *History) Len() int { return len(h.undo) }
func (h *History) RedoLen() int { return len(h.redo) }
func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Stats returns current sizes for diagnostics.
func (h *History) Stats() (drawables int, undone int, points int) {
	for _, d := range h.undo {
		if s, ok := d.(*draw.Stroke); ok {
			points += s.Len()
		}
	}
	return len(h.undo), len(h.redo), points
}

func (h *History) enforceCaps() {
	if h.cfg.MaxDepth > 0 && len(h.undo) > h.cfg.MaxDepth {
		// drop the oldest extras
		toDrop := len(h.undo) - h.cfg.MaxDepth
		h.undo = append([]draw.Drawable{}, h.undo[toDrop:]...)
	}
}

func clearStack(s *[]draw.Drawable) {
	for i := range *s {
		(*s)[i] = nil
	}
	*s = (*s)[:0]
}
