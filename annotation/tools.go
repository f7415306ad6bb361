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
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Tool describes the drawing tool which creates annotations of one type.
type Tool struct {
	Type     Type   `yaml:"type" validate:"required"`
	Label    string `yaml:"label" validate:"required"`
	Shortcut string `yaml:"shortcut" validate:"required,len=1"`

	// Color is the default stroke color for new annotations.
	Color string `yaml:"color" validate:"required,hexcolor"`

	// MinPoints and MaxPoints bound the number of pixel positions needed to
	// place an annotation.  MaxPoints 0 means there is no upper bound.
	MinPoints int `yaml:"min_points" validate:"gte=1"`
	MaxPoints int `yaml:"max_points" validate:"gte=0"`

	// Measures is set for tools whose annotations show a real-world
	// quantity.
	Measures bool `yaml:"measures"`
}

//go:embed tools.yaml
var toolsYAML []byte

type toolRegistry struct {
	tools  []*Tool
	byType map[Type]*Tool
}

var registry *toolRegistry

func init() {
	reg, err := loadTools(toolsYAML)
	if err != nil {
		panic(err)
	}
	registry = reg
}

// loadTools decodes and checks a tool registry document.  Every annotation
// type must be covered exactly once.
func loadTools(data []byte) (*toolRegistry, error) {
	var doc struct {
		Tools []*Tool `yaml:"tools"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("tool registry: %w", err)
	}

	reg := &toolRegistry{
		tools:  doc.Tools,
		byType: make(map[Type]*Tool, len(doc.Tools)),
	}
	for _, t := range doc.Tools {
		if err := validate.Struct(t); err != nil {
			return nil, fmt.Errorf("tool registry: %s: %w", t.Type, err)
		}
		if !slices.Contains(AllTypes, t.Type) {
			return nil, fmt.Errorf("tool registry: %w", &UnknownTypeError{Type: t.Type})
		}
		if _, dup := reg.byType[t.Type]; dup {
			return nil, fmt.Errorf("tool registry: duplicate tool %q", t.Type)
		}
		if t.MaxPoints != 0 && t.MaxPoints < t.MinPoints {
			return nil, fmt.Errorf("tool registry: %s: max_points < min_points", t.Type)
		}
		reg.byType[t.Type] = t
	}
	for _, tp := range AllTypes {
		if _, ok := reg.byType[tp]; !ok {
			return nil, fmt.Errorf("tool registry: no tool for %q", tp)
		}
	}
	return reg, nil
}

// Tools returns the drawing tools in toolbar order.
func Tools() []Tool {
	res := make([]Tool, len(registry.tools))
	for i, t := range registry.tools {
		res[i] = *t
	}
	return res
}

// LookupTool returns the tool for the given annotation type.
func LookupTool(tp Type) (Tool, bool) {
	t, ok := registry.byType[tp]
	if !ok {
		return Tool{}, false
	}
	return *t, true
}
