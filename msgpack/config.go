// Copyright (C) 2026 Kestrel Games, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package msgpack

// StringMode selects which wire encodings the encoder is allowed to
// emit for string-shaped values.
type StringMode int

const (
	// StringCompat emits only fixstr/str16/str32 (no str8).
	StringCompat StringMode = iota
	// StringMode8 adds str8 to the encodings StringCompat allows.
	StringMode8
	// BinaryMode emits bin8/16/32 instead of any string encoding.
	BinaryMode
)

// IntegerMode selects how the encoder prefers to represent integers.
type IntegerMode int

const (
	// UnsignedMode tries positive (uint) encodings first for
	// non-negative values.
	UnsignedMode IntegerMode = iota
	// SignedMode always uses signed encodings for values that don't
	// fit a positive/negative fixint.
	SignedMode
)

// NumberMode selects the wire width for non-integer numbers.
type NumberMode int

const (
	// DoubleMode emits float64.
	DoubleMode NumberMode = iota
	// FloatMode emits float32.
	FloatMode
)

// ArrayMode selects how sparse, positive-integer-keyed maps are
// represented.
type ArrayMode int

const (
	// WithoutHole always emits a map for non-contiguous keys.
	WithoutHole ArrayMode = iota
	// WithHole pads a sparse positive-integer-keyed map to an array of
	// its maximum index.
	WithHole
	// AlwaysAsMap never promotes a map to an array.
	AlwaysAsMap
)

// Config is the codec's configuration surface. The zero value is NOT
// the default; use DefaultConfig for the pipeline façade's defaults
// (string, unsigned, double, without_hole).
type Config struct {
	String  StringMode
	Integer IntegerMode
	Number  NumberMode
	Array   ArrayMode

	// Registry holds the extension tag<->name bindings available to
	// this Config. A nil Registry falls back to the package-level
	// DefaultRegistry (built-ins only).
	Registry *Registry
}

// DefaultConfig returns the façade's default configuration: string
// mode for strings, unsigned integers, double-precision floats, and
// sparse maps never promoted to arrays.
func DefaultConfig() Config {
	return Config{
		String:  StringMode8,
		Integer: UnsignedMode,
		Number:  DoubleMode,
		Array:   WithoutHole,
	}
}

func (c Config) registry() *Registry {
	if c.Registry != nil {
		return c.Registry
	}
	return DefaultRegistry
}
