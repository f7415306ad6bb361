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

// Package scale parses the scale notation printed on construction drawings.
//
// Three dialects are in common use, and a single string can look like more
// than one of them:
//
//   - architectural, giving a drawn fraction of an inch per real feet and
//     inches, e.g. 1/4" = 1'-0"
//   - civil or engineering, giving real feet per drawn inch, e.g. 1" = 20'
//   - metric ratios, e.g. 1:100
//
// A bare fraction such as 1/4 is read as a plain ratio.  [Parse] tries the
// dialects in exactly this order and uses the first one which matches.
package scale

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Unit is the measurement system of a drawing scale.
type Unit uint8

// These are the supported measurement systems.
const (
	Imperial Unit = iota
	Metric
)

func (u Unit) String() string {
	switch u {
	case Imperial:
		return "imperial"
	case Metric:
		return "metric"
	default:
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (u Unit) MarshalText() ([]byte, error) {
	switch u {
	case Imperial, Metric:
		return []byte(u.String()), nil
	default:
		return nil, fmt.Errorf("invalid scale unit %d", u)
	}
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (u *Unit) UnmarshalText(text []byte) error {
	switch string(text) {
	case "imperial":
		*u = Imperial
	case "metric":
		*u = Metric
	default:
		return fmt.Errorf("invalid scale unit %q", text)
	}
	return nil
}

// Notation identifies the dialect a scale was written in.
type Notation uint8

// These are the scale dialects, in the order in which [Parse] tries them.
const (
	Architectural Notation = iota + 1
	Civil
	MetricRatio
	BareFraction
)

func (n Notation) String() string {
	switch n {
	case Architectural:
		return "architectural"
	case Civil:
		return "civil"
	case MetricRatio:
		return "ratio"
	case BareFraction:
		return "fraction"
	default:
		return "Notation(" + strconv.Itoa(int(n)) + ")"
	}
}

// Scale is the result of parsing scale notation.
//
// Ratio is the drawn length per real length, measured in the same unit.
// For 1/4" = 1'-0" this is 0.25/12 = 1/48, for 1:100 it is 0.01.
// Ratio is always finite and greater than zero.
type Scale struct {
	Ratio    float64
	Unit     Unit
	Notation Notation

	// Display is the text the scale was parsed from.
	Display string
}

func (s *Scale) String() string {
	return s.Display
}

type scaleJSON struct {
	Ratio    float64 `json:"ratio"`
	Unit     Unit    `json:"unit"`
	Notation string  `json:"notation,omitempty"`
	Display  string  `json:"display"`
}

// MarshalJSON implements the [json.Marshaler] interface.
func (s *Scale) MarshalJSON() ([]byte, error) {
	if !(s.Ratio > 0) || math.IsInf(s.Ratio, 0) {
		return nil, fmt.Errorf("invalid scale ratio %g", s.Ratio)
	}
	out := scaleJSON{
		Ratio:   s.Ratio,
		Unit:    s.Unit,
		Display: s.Display,
	}
	if s.Notation != 0 {
		out.Notation = s.Notation.String()
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (s *Scale) UnmarshalJSON(data []byte) error {
	var in scaleJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if !(in.Ratio > 0) || math.IsInf(in.Ratio, 0) {
		return fmt.Errorf("invalid scale ratio %g", in.Ratio)
	}
	var n Notation
	switch in.Notation {
	case "":
	case "architectural":
		n = Architectural
	case "civil":
		n = Civil
	case "ratio":
		n = MetricRatio
	case "fraction":
		n = BareFraction
	default:
		return fmt.Errorf("invalid scale notation %q", in.Notation)
	}
	*s = Scale{Ratio: in.Ratio, Unit: in.Unit, Notation: n, Display: in.Display}
	return nil
}

const num = `\d+(?:\.\d+)?`

// minNormal is the smallest positive normal float64.
const minNormal = 0x1p-1022

var (
	// 1-1/2" = 1'-0", SCALE: 1 1/2" = 1'-0"
	//
	// The whole part must open the text or follow a colon or the word
	// "scale", so that sheet and detail numbers such as
	// "A-101 1/4" = 1'-0"" are not taken for it.
	archMixed = regexp.MustCompile(`(?:^|:|(?i:scale))\s*(\d+)(?:-|\s+)(\d+)\s*/\s*(\d+)\s*"\s*=\s*(` + num + `)\s*'(?:\s*-?\s*(` + num + `)\s*")?`)

	// 1/4" = 1'-0", 1/8" = 1'
	archFraction = regexp.MustCompile(`(?:^|[^\d./])(\d+)\s*/\s*(\d+)\s*"\s*=\s*(` + num + `)\s*'(?:\s*-?\s*(` + num + `)\s*")?`)

	// 3" = 1'-0"; a whole drawn length needs the inches part
	archWhole = regexp.MustCompile(`(?:^|[^\d./])(` + num + `)\s*"\s*=\s*(` + num + `)\s*'\s*-?\s*(` + num + `)\s*"`)

	// 1" = 20'
	civil = regexp.MustCompile(`(?:^|[^\d./])1\s*"\s*=\s*(` + num + `)\s*'`)

	// 1:100
	metric = regexp.MustCompile(`(?:^|[^\d.])1\s*:\s*(` + num + `)`)

	// 1/4
	bareFraction = regexp.MustCompile(`(\d+)\s*/\s*(\d+)`)
)

// fold maps typographic variants of digits, fractions, primes and quotes to
// plain ASCII.
var fold = strings.NewReplacer(
	"⁄", "/", // fraction slash, produced by NFKC from ¼ ½ ¾
	"∕", "/",
	"′′", `"`, // NFKC turns ″ into two primes
	"′", "'",
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"''", `"`,
	"‐", "-",
	"‑", "-",
	"–", "-",
	"—", "-",
	"−", "-",
)

func normalize(text string) string {
	return fold.Replace(norm.NFKC.String(text))
}

// IsNotToScale reports whether text explicitly marks a drawing as not to
// scale.  The empty string counts as not to scale.
func IsNotToScale(text string) bool {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '.':
			return -1
		}
		return r
	}, strings.ToUpper(normalize(text)))
	switch key {
	case "", "NTS", "NOTTOSCALE":
		return true
	}
	return false
}

// Parse reads drawing scale notation.
//
// The result is nil if the text marks the drawing as not to scale
// (see [IsNotToScale]), if the text is not recognized, or if the numbers
// given describe a degenerate scale such as 1/0" = 1'-0".  Callers must then
// fall back to showing pixel units.
//
// The patterns may occur anywhere in text, so that labels like
// "SCALE: 1/8" = 1'-0"" are understood.
func Parse(text string) *Scale {
	if IsNotToScale(text) {
		return nil
	}
	s := normalize(text)

	var ratio float64
	var unit Unit
	var notation Notation
	var whole string
	m := archMixed.FindStringSubmatch(s)
	if m != nil {
		whole, m = m[1], m[1:]
	} else {
		m = archFraction.FindStringSubmatch(s)
	}
	if m != nil {
		drawn := atof(m[1]) / atof(m[2])
		if whole != "" {
			drawn += atof(whole)
		}
		ratio = drawn / feetInches(m[3], m[4])
		unit, notation = Imperial, Architectural
	} else if m := archWhole.FindStringSubmatch(s); m != nil {
		ratio = atof(m[1]) / feetInches(m[2], m[3])
		unit, notation = Imperial, Architectural
	} else if m := civil.FindStringSubmatch(s); m != nil {
		ratio = 1 / (atof(m[1]) * 12)
		unit, notation = Imperial, Civil
	} else if m := metric.FindStringSubmatch(s); m != nil {
		ratio = 1 / atof(m[1])
		unit, notation = Metric, MetricRatio
	} else if m := bareFraction.FindStringSubmatch(s); m != nil {
		ratio = atof(m[1]) / atof(m[2])
		unit, notation = Imperial, BareFraction
	} else {
		return nil
	}

	// Areas are computed with the square of the ratio.
	if sq := ratio * ratio; !(sq >= minNormal) || math.IsInf(sq, 0) {
		return nil
	}
	return &Scale{
		Ratio:    ratio,
		Unit:     unit,
		Notation: notation,
		Display:  text,
	}
}

// feetInches returns the length in inches described by a feet and an
// optional inches component.
func feetInches(feet, inches string) float64 {
	total := atof(feet) * 12
	if inches != "" {
		total += atof(inches)
	}
	return total
}

// atof converts a string matched by one of the patterns above.
// The patterns only admit valid numbers, so errors cannot occur.
func atof(s string) float64 {
	x, _ := strconv.ParseFloat(s, 64)
	return x
}
