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
	"math"

	"github.com/go-playground/validator/v10"
)

// validate checks the struct tags of the annotation types.
// It is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", validateFinite)
	v.RegisterStructValidation(validateCommon, Common{})
	return v
}

// validateFinite rejects NaN and infinite floating point values.
func validateFinite(fl validator.FieldLevel) bool {
	x := fl.Field().Float()
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// validateCommon checks that ResolvedAt and ResolvedBy are either both set or
// both unset.
func validateCommon(sl validator.StructLevel) {
	c := sl.Current().Interface().(Common)
	switch {
	case c.ResolvedAt == nil && c.ResolvedBy != nil:
		sl.ReportError(c.ResolvedAt, "ResolvedAt", "ResolvedAt", "required_with", "ResolvedBy")
	case c.ResolvedAt != nil && c.ResolvedBy == nil:
		sl.ReportError(c.ResolvedBy, "ResolvedBy", "ResolvedBy", "required_with", "ResolvedAt")
	case c.ResolvedBy != nil && *c.ResolvedBy == "":
		sl.ReportError(c.ResolvedBy, "ResolvedBy", "ResolvedBy", "required", "")
	}
}

// Validate checks that the annotation satisfies the constraints of its type.
// If it does not, an [*InvalidError] listing the offending fields is
// returned.
func Validate(a Annotation) error {
	if a == nil {
		return &InvalidError{Err: errors.New("missing annotation")}
	}
	tp := a.AnnotationType()
	if _, ok := registry.byType[tp]; !ok {
		return &InvalidError{Type: tp, Err: &UnknownTypeError{Type: tp}}
	}

	err := validate.Struct(a)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return &InvalidError{Type: tp, Err: err}
	}
	res := &InvalidError{Type: tp, Err: err}
	for _, fe := range fieldErrors {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		res.Fields = append(res.Fields, fe.Namespace()+": "+rule)
	}
	return res
}
