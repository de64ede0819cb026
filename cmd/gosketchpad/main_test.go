/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"os"
	"path/filepath"
	"testing"

	"gosketchpad/internal/config"
	"gosketchpad/internal/crash"
	"gosketchpad/internal/export"
)

func TestReplayWritesExports(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "s.yaml")
	body := `canvas: {width: 32, height: 32}
events:
  - {op: color, value: red}
  - {op: down, at: [2, 2]}
  - {op: move, at: [20, 20]}
  - {op: up, at: [20, 20]}
  - {op: custom, value: ""}
`
	if err := os.WriteFile(src, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out")
	target := &crash.Target{}
	if err := replay(config.Defaults(), target, []string{"--pdf", src, out}); err != nil {
		t.Fatalf("replay: %v", err)
	}
	for _, name := range []string{export.PNGFileName, export.PDFFileName} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
	if target.Session == nil || target.Session.History().Len() != 1 {
		t.Fatalf("crash target not bound to the replayed session")
	}
	if target.Export.Width != 32 {
		t.Fatalf("script canvas not applied: %+v", target.Export)
	}
}

func TestReplayNeedsArgs(t *testing.T) {
	if err := replay(config.Defaults(), &crash.Target{}, []string{"only-one"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestConfigInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(config.EnvConfigPath, path)
	if err := configCmd(config.Defaults(), []string{"init"}); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if err := configCmd(config.Defaults(), nil); err != nil {
		t.Fatalf("config print: %v", err)
	}
}
