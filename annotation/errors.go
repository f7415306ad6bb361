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
	"strconv"
	"strings"
)

// ErrAlreadyResolved is returned when resolving an annotation which has
// already been resolved.
var ErrAlreadyResolved = errors.New("annotation already resolved")

// UnknownTypeError indicates an annotation type tag which is not one of
// [AllTypes].
type UnknownTypeError struct {
	Type Type
}

func (err *UnknownTypeError) Error() string {
	return "unknown annotation type " + strconv.Quote(string(err.Type))
}

// MalformedPayloadError indicates that a stored payload could not be
// decoded.
type MalformedPayloadError struct {
	Err error
}

func (err *MalformedPayloadError) Error() string {
	if err.Err == nil {
		return "malformed annotation payload"
	}
	return "malformed annotation payload: " + err.Err.Error()
}

func (err *MalformedPayloadError) Unwrap() error {
	return err.Err
}

// InvalidError indicates that an annotation violates one of the constraints
// of its type, for example an area with fewer than three vertices.
type InvalidError struct {
	Type Type

	// Fields lists the offending fields together with the violated rule,
	// e.g. "Area.Points: min=3".
	Fields []string

	Err error
}

func (err *InvalidError) Error() string {
	msg := "invalid " + string(err.Type) + " annotation"
	if len(err.Fields) > 0 {
		msg += ": " + strings.Join(err.Fields, ", ")
	} else if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *InvalidError) Unwrap() error {
	return err.Err
}
