// planmark.dev/takeoff - drawing scale and markup geometry for construction plans
// Copyright (C) 2025  The takeoff Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package annotation

import (
	"strings"
	"testing"
)

func TestToolsCoverAllTypes(t *testing.T) {
	tools := Tools()
	if len(tools) != len(AllTypes) {
		t.Fatalf("%d tools for %d types", len(tools), len(AllTypes))
	}
	for i, tp := range AllTypes {
		if tools[i].Type != tp {
			t.Errorf("tool %d is %q, want %q", i, tools[i].Type, tp)
		}
		tool, ok := LookupTool(tp)
		if !ok {
			t.Errorf("no tool for %q", tp)
			continue
		}
		if tool != tools[i] {
			t.Errorf("LookupTool(%q) = %v, want %v", tp, tool, tools[i])
		}
	}
}

func TestToolsShortcutsUnique(t *testing.T) {
	seen := map[string]Type{}
	for _, tool := range Tools() {
		if other, dup := seen[tool.Shortcut]; dup {
			t.Errorf("shortcut %q used by %q and %q", tool.Shortcut, other, tool.Type)
		}
		seen[tool.Shortcut] = tool.Type
	}
}

func TestToolsMeasures(t *testing.T) {
	for _, tool := range Tools() {
		want := tool.Type == TypeMeasurement || tool.Type == TypeArea
		if tool.Measures != want {
			t.Errorf("%q: measures=%t", tool.Type, tool.Measures)
		}
	}
}

func TestToolsCopy(t *testing.T) {
	tools := Tools()
	tools[0].Label = "changed"
	if Tools()[0].Label == "changed" {
		t.Error("Tools returned shared data")
	}
}

func TestLookupToolUnknown(t *testing.T) {
	if _, ok := LookupTool("stamp"); ok {
		t.Error("found tool for unknown type")
	}
}

func TestLoadToolsErrors(t *testing.T) {
	full := string(toolsYAML)
	cases := []struct {
		name string
		doc  string
		msg  string
	}{
		{"syntax", "tools: [", "tool registry"},
		{"empty", "tools: []", "no tool for"},
		{"unknown", full + `
  - type: stamp
    label: Stamp
    shortcut: S
    color: "#000000"
    min_points: 1
    max_points: 1
`, "unknown annotation type"},
		{"duplicate", full + `
  - type: pin
    label: Pin Again
    shortcut: Z
    color: "#000000"
    min_points: 1
    max_points: 1
`, "duplicate"},
		{"bad color", strings.Replace(full, `"#e53935"`, `"crimson"`, 1), "hexcolor"},
		{"bounds", strings.Replace(full, "min_points: 3\n    max_points: 0", "min_points: 3\n    max_points: 2", 1), "max_points < min_points"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadTools([]byte(tc.doc))
			if err == nil {
				t.Fatal("broken registry accepted")
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Errorf("error %q does not mention %q", err, tc.msg)
			}
		})
	}

	if _, err := loadTools(toolsYAML); err != nil {
		t.Errorf("embedded registry: %v", err)
	}
}
