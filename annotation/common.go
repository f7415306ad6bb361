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
	"time"

	"planmark.dev/takeoff/coord"
)

// Common contains the fields shared by all annotation types.
//
// The identity and audit fields (ID, FileID, PageNumber, CreatedBy,
// CreatedAt, ResolvedAt and ResolvedBy) are managed by the storage layer and
// are not part of the serialized payload.
type Common struct {
	ID         string `json:"-" validate:"required"`
	FileID     string `json:"-" validate:"required"`
	PageNumber int    `json:"-" validate:"gte=1"`

	CreatedBy string    `json:"-" validate:"required"`
	CreatedAt time.Time `json:"-" validate:"required"`

	// ResolvedAt and ResolvedBy are either both nil (the annotation is
	// open) or both set (the annotation is resolved).
	ResolvedAt *time.Time `json:"-"`
	ResolvedBy *string    `json:"-"`

	// Color is the stroke color as a hex string, e.g. "#e53935".
	Color string `json:"color" validate:"required,hexcolor"`

	// Position is the primary anchor of the annotation.
	//
	// For two-point types (Line, Measurement) this is the start point.  For
	// Area and Freehand the position is maintained by the caller and is not
	// used by any computation in this package; Place initializes it to the
	// first vertex.
	Position coord.Point `json:"position"`
}

// GetCommon implements the [Annotation] interface.
func (c *Common) GetCommon() *Common {
	return c
}

// Identity holds the identity and audit fields of an annotation.
type Identity struct {
	ID         string
	FileID     string
	PageNumber int
	CreatedBy  string
	CreatedAt  time.Time
	ResolvedAt *time.Time
	ResolvedBy *string
}

// Identity returns the identity and audit fields of the annotation.
func (c *Common) Identity() Identity {
	return Identity{
		ID:         c.ID,
		FileID:     c.FileID,
		PageNumber: c.PageNumber,
		CreatedBy:  c.CreatedBy,
		CreatedAt:  c.CreatedAt,
		ResolvedAt: c.ResolvedAt,
		ResolvedBy: c.ResolvedBy,
	}
}

func (c *Common) setIdentity(id Identity) {
	c.ID = id.ID
	c.FileID = id.FileID
	c.PageNumber = id.PageNumber
	c.CreatedBy = id.CreatedBy
	c.CreatedAt = id.CreatedAt
	c.ResolvedAt = id.ResolvedAt
	c.ResolvedBy = id.ResolvedBy
}
