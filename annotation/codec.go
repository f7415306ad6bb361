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
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Serialize encodes the content of an annotation as a JSON payload.
//
// The payload contains the type tag, the color, the position and the
// fields of the concrete type.  The identity and audit fields are not
// included; they are stored alongside the payload and passed back to
// [Parse].  The annotation is validated before it is encoded.
func Serialize(a Annotation) ([]byte, error) {
	if err := Validate(a); err != nil {
		return nil, err
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("serialize %s annotation: %w", a.AnnotationType(), err)
	}
	return data, nil
}

// Parse reconstructs an annotation from its stored identity fields and a
// payload written by [Serialize].
//
// If the type tag of the payload is unknown, an [*UnknownTypeError] is
// returned.  Payloads which are not valid JSON or which do not match the
// structure of their type give a [*MalformedPayloadError].  If the result
// violates a constraint of its type, an [*InvalidError] is returned.
func Parse(id, fileID string, payload []byte, page int, createdBy string,
	createdAt time.Time, resolvedAt *time.Time, resolvedBy *string) (Annotation, error) {
	return ParseIdentity(Identity{
		ID:         id,
		FileID:     fileID,
		PageNumber: page,
		CreatedBy:  createdBy,
		CreatedAt:  createdAt,
		ResolvedAt: resolvedAt,
		ResolvedBy: resolvedBy,
	}, payload)
}

// ParseIdentity is like [Parse], but takes the identity fields as one value.
func ParseIdentity(id Identity, payload []byte) (Annotation, error) {
	var envelope struct {
		Type *Type `json:"type"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, &MalformedPayloadError{Err: err}
	}
	if envelope.Type == nil {
		return nil, &MalformedPayloadError{Err: errors.New("missing type tag")}
	}

	a, err := newAnnotation(*envelope.Type)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(payload, a); err != nil {
		return nil, &MalformedPayloadError{Err: err}
	}

	a.GetCommon().setIdentity(id)
	if err := Validate(a); err != nil {
		return nil, err
	}
	return a, nil
}
