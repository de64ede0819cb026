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
	"log/slog"
	"strings"

	"gosketchpad/internal/draw"
	applog "gosketchpad/internal/log"
	"gosketchpad/internal/session"
)

// Result summarizes a replay. Rejected events are the ones a user would
// have seen an alert for; replay continues past them.
type Result struct {
	Applied  int
	Rejected []Error
}

// Replay feeds every event to sess in order.
func Replay(s Script, sess *session.Session) Result {
	l := applog.WithOperation(applog.WithComponent("script"), "replay")
	var res Result
	for _, ev := range s.Events {
		if err := apply(ev, sess); err != nil {
			l.WarnContext(sess.Context(), "event rejected", slog.Int("line", ev.Line), slog.String("op", string(ev.Op)), slog.Any("err", err))
			res.Rejected = append(res.Rejected, Error{Line: ev.Line, Column: 1, Message: err.Error()})
			continue
		}
		res.Applied++
	}
	l.InfoContext(sess.Context(), "script replayed", slog.String("name", s.Name),
		slog.Int("applied", res.Applied), slog.Int("rejected", len(res.Rejected)))
	return res
}

func apply(ev Event, sess *session.Session) error {
	switch ev.Op {
	case OpEnter:
		sess.PointerEnter(pt(ev.At))
	case OpLeave:
		sess.PointerLeave()
	case OpDown:
		sess.PointerDown(pt(ev.At))
	case OpMove:
		if len(ev.At) == 2 {
			sess.PointerMove(pt(ev.At))
		}
		for _, p := range ev.Path {
			sess.PointerMove(pt(p))
		}
	case OpUp:
		sess.PointerUp(pt(ev.At))
	case OpUndo:
		sess.Undo()
	case OpRedo:
		sess.Redo()
	case OpClear:
		sess.Clear()
	case OpReset:
		sess.Reset()
	case OpMarker:
		sess.SelectMarker(ev.Width)
	case OpColor:
		c, ok := resolveColor(ev.Value, sess.Presets())
		if !ok {
			return fmt.Errorf("unknown color %q", ev.Value)
		}
		sess.SelectColor(c)
	case OpSticker:
		sess.SelectSticker(ev.Value)
	case OpCustom:
		g, err := sess.AddCustomSticker(ev.Value)
		if err != nil {
			return err
		}
		sess.SelectSticker(g)
	default:
		return errors.New("unsupported op " + string(ev.Op))
	}
	return nil
}

// resolveColor matches a palette label first ("Indigo"), then a color name
// or hex value.
func resolveColor(v string, p session.Presets) (draw.Color, bool) {
	v = strings.TrimSpace(v)
	for _, c := range p.Colors {
		if strings.EqualFold(c.Label, v) {
			return c.Color, true
		}
	}
	return draw.ParseColor(v)
}

func pt(xy []float64) draw.Point { return draw.Pt(xy[0], xy[1]) }
