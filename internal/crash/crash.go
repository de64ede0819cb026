/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package crash turns a panic into a report file, a rescue PNG of the
// drawing and a non-zero exit.
package crash

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	"gosketchpad/internal/draw"
	"gosketchpad/internal/export"
	applog "gosketchpad/internal/log"
	"gosketchpad/internal/session"
	"gosketchpad/internal/version"
)

// exitFn is used to allow testing of Recover without terminating the test process.
var exitFn = os.Exit

// Target is what Recover reports on. A nil Target or Session still yields a
// report in the temp dir.
type Target struct {
	Session *session.Session
	Dir     string // report directory; empty means os.TempDir()
	Export  export.Options
}

// Recover captures a panic, logs an error with stacktrace, writes a crash
// report and attempts to rescue the drawing as a PNG.
//
// Usage: defer crash.Recover(target)
func Recover(t *Target) {
	if r := recover(); r != nil {
		l := applog.WithComponent("crash")
		stack := debug.Stack()
		l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

		reportPath, err := writeReport(t, r, stack)
		if err != nil {
			l.Error("crash report failed", slog.Any("err", err))
		}
		if path, err := rescue(t, reportPath); err != nil {
			l.Error("rescue export failed", slog.Any("err", err))
		} else if path != "" {
			l.Info("rescue export written", slog.String("path", path))
		}

		if _, err := fmt.Fprintf(os.Stderr, "A fatal error occurred. A crash report was saved to: %s\n", reportPath); err != nil {
			l.Error("failed to write crash message to stderr", slog.Any("err", err))
		}
		if _, err := fmt.Fprintf(os.Stderr, "Version: %s\nOS/Arch: %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH); err != nil {
			l.Error("failed to write version info to stderr", slog.Any("err", err))
		}
		exitFn(2)
	}
}

func reportDir(t *Target) string {
	if t != nil && t.Dir != "" {
		_ = os.MkdirAll(t.Dir, 0o755)
		return t.Dir
	}
	return os.TempDir()
}

func writeReport(t *Target, panicVal any, stack []byte) (string, error) {
	stamp := time.Now().Format("20060102-150405")
	path := filepath.Join(reportDir(t), fmt.Sprintf("crash-%s.log", stamp))

	var buf bytes.Buffer
	_, _ = fmt.Fprintf(&buf, "GoSketchpad Crash Report\n")
	_, _ = fmt.Fprintf(&buf, "Timestamp: %s\n", time.Now().Format(time.RFC3339))
	_, _ = fmt.Fprintf(&buf, "Version: %s\n", version.String())
	_, _ = fmt.Fprintf(&buf, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	if t != nil && t.Session != nil {
		s := t.Session
		n, undone, points := s.History().Stats()
		tool := s.Tool()
		_, _ = fmt.Fprintf(&buf, "Session: %s\n", s.ID())
		_, _ = fmt.Fprintf(&buf, "State: %s\n", s.State())
		_, _ = fmt.Fprintf(&buf, "Tool: %s glyph=%q width=%g color=%s\n", tool.Mode, tool.Glyph, tool.Width, tool.Color)
		_, _ = fmt.Fprintf(&buf, "Drawables: %d (undone %d, points %d)\n", n, undone, points)
		if ext := draw.Extent(s.Items()); !ext.Empty() {
			_, _ = fmt.Fprintf(&buf, "Extent: %.0fx%.0f at (%.0f,%.0f)\n", ext.W, ext.H, ext.X, ext.Y)
		}
	}
	_, _ = fmt.Fprintf(&buf, "\nPanic: %v\n\n", panicVal)
	_, _ = fmt.Fprintf(&buf, "Stack:\n%s\n", string(stack))

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return path, err
	}
	return path, nil
}

// rescue exports the committed drawing next to the report, in a directory
// named after it. Nothing is written for an empty history.
func rescue(t *Target, reportPath string) (path string, err error) {
	if t == nil || t.Session == nil || t.Session.History().Len() == 0 {
		return "", nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rescue panicked: %v", r)
		}
	}()
	dir := reportPath[:len(reportPath)-len(filepath.Ext(reportPath))]
	return export.ExportPNG(dir, t.Session.Items(), t.Export)
}
