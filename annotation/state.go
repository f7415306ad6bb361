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
	"errors"
	"time"
)

// State is the review state of an annotation.
type State uint8

// These are the review states.  The only transition is from Open to
// Resolved.
const (
	Open State = iota
	Resolved
)

func (s State) String() string {
	if s == Resolved {
		return "resolved"
	}
	return "open"
}

// State returns the review state of the annotation.
func (c *Common) State() State {
	if c.ResolvedAt != nil {
		return Resolved
	}
	return Open
}

// Resolve marks the annotation as resolved by the given user.
// If the annotation is already resolved, [ErrAlreadyResolved] is returned and
// the annotation is not changed.
func (c *Common) Resolve(by string, at time.Time) error {
	if c.ResolvedAt != nil {
		return ErrAlreadyResolved
	}
	if by == "" {
		return errors.New("annotation: missing resolver")
	}
	c.ResolvedAt = &at
	c.ResolvedBy = &by
	return nil
}
