/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */
package session

// Event names a change notification.
type Event int

const (
	// DrawingChanged: the committed drawing changed; repaint the history.
	DrawingChanged Event = iota
	// CursorChanged: the preview moved or vanished; repaint, then overlay it.
	CursorChanged
)

func (e Event) String() string {
	if e == CursorChanged {
		return "cursor-changed"
	}
	return "drawing-changed"
}

type listener struct {
	id int
	fn func()
}

// On registers fn for evt and returns a function that removes it. Listeners
// run in registration order.
func (s *Session) On(evt Event, fn func()) (off func()) {
	s.nextID++
	id := s.nextID
	s.listeners[evt] = append(s.listeners[evt], listener{id: id, fn: fn})
	return func() {
		ls := s.listeners[evt]
		for i, l := range ls {
			if l.id == id {
				s.listeners[evt] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// Dispatch runs every listener of evt before returning. Listeners may
// dispatch further events; those run immediately, nested in this call.
func (s *Session) Dispatch(evt Event) {
	ls := s.listeners[evt]
	if len(ls) == 0 {
		return
	}
	// snapshot: a listener may register or remove listeners
	snap := append([]listener(nil), ls...)
	for _, l := range snap {
		l.fn()
	}
}
