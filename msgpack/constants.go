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

// Wire format prefix bytes, per the MessagePack spec
// (https://github.com/msgpack/msgpack/blob/master/spec.md). Naming
// follows the convention used by the wider Go msgpack ecosystem
// (fixFoo/fooCode pairs for a low/high bound plus a mask).
const (
	nilCode   = 0xc0
	falseCode = 0xc2
	trueCode  = 0xc3

	posFixintHighCode = 0x7f
	negFixintLowCode  = 0xe0

	uint8Code  = 0xcc
	uint16Code = 0xcd
	uint32Code = 0xce
	uint64Code = 0xcf

	int8Code  = 0xd0
	int16Code = 0xd1
	int32Code = 0xd2
	int64Code = 0xd3

	float32Code = 0xca
	float64Code = 0xcb

	fixstrLowCode  = 0xa0
	fixstrHighCode = 0xbf
	fixstrMask     = 0x1f
	str8Code       = 0xd9
	str16Code      = 0xda
	str32Code      = 0xdb

	bin8Code  = 0xc4
	bin16Code = 0xc5
	bin32Code = 0xc6

	fixarrayLowCode  = 0x90
	fixarrayHighCode = 0x9f
	fixarrayMask     = 0x0f
	array16Code      = 0xdc
	array32Code      = 0xdd

	fixmapLowCode  = 0x80
	fixmapHighCode = 0x8f
	fixmapMask     = 0x0f
	map16Code      = 0xde
	map32Code      = 0xdf

	fixext1Code  = 0xd4
	fixext2Code  = 0xd5
	fixext4Code  = 0xd6
	fixext8Code  = 0xd7
	fixext16Code = 0xd8
	ext8Code     = 0xc7
	ext16Code    = 0xc8
	ext32Code    = 0xc9
)

// Built-in extension tags.
const (
	TagVector3        int8 = 0
	TagRotation       int8 = 1
	TagColor          int8 = 2
	TagVector2        int8 = 3
	TagVector4        int8 = 4
	TagPlayerID128    int8 = 5
	TagPlayerIDString int8 = 6
	TagObjectRef64    int8 = 7
	TagObjectRefString int8 = 8
	TagConstant       int8 = 40
	TagBitArray       int8 = 41
	TagEnum           int8 = 42
)

// Well-known constant selectors (tag 40, 1-byte payload).
const (
	ConstObjectRefUnassigned uint8 = 0

	ConstColorWhite       uint8 = 10
	ConstColorGray        uint8 = 11
	ConstColorBlack       uint8 = 12
	ConstColorTransparent uint8 = 13
	ConstColorRed         uint8 = 14
	ConstColorGreen       uint8 = 15
	ConstColorBlue        uint8 = 16
	ConstColorCyan        uint8 = 17
	ConstColorMagenta     uint8 = 18
	ConstColorYellow      uint8 = 19
	ConstColorOrange      uint8 = 20
	ConstColorPurple      uint8 = 21
	ConstColorBrown       uint8 = 22
	ConstColorPink        uint8 = 23
	ConstColorTan         uint8 = 24
	ConstColorRuby        uint8 = 25
	ConstColorEmerald     uint8 = 26
	ConstColorSapphire    uint8 = 27
	ConstColorSilver      uint8 = 28
	ConstColorSmoke       uint8 = 29

	ConstVector2One  uint8 = 40
	ConstVector2Zero uint8 = 41

	ConstVector3One     uint8 = 51
	ConstVector3Zero    uint8 = 52
	ConstVector3Forward uint8 = 53
	ConstVector3Up      uint8 = 54
	ConstVector3Right   uint8 = 55

	ConstVector4One  uint8 = 60
	ConstVector4Zero uint8 = 61

	ConstRotationZero uint8 = 70
)

// constantValues maps every registered selector to the Value it
// denotes. The reverse map, used by the encoder to recognize a value
// that has a well-known shortcut, is built once from this table —
// forward table hand-written, reverse table derived — mirroring how
// ion/symtab.go builds system2id from systemsyms at init time.
var constantValues = map[uint8]Value{
	ConstObjectRefUnassigned: ObjectRef64(0),

	ConstColorWhite:       Color{R: 255, G: 255, B: 255, A: 255},
	ConstColorGray:        Color{R: 128, G: 128, B: 128, A: 255},
	ConstColorBlack:       Color{R: 0, G: 0, B: 0, A: 255},
	ConstColorTransparent: Color{R: 0, G: 0, B: 0, A: 0},
	ConstColorRed:         Color{R: 255, G: 0, B: 0, A: 255},
	ConstColorGreen:       Color{R: 0, G: 255, B: 0, A: 255},
	ConstColorBlue:        Color{R: 0, G: 0, B: 255, A: 255},
	ConstColorCyan:        Color{R: 0, G: 255, B: 255, A: 255},
	ConstColorMagenta:     Color{R: 255, G: 0, B: 255, A: 255},
	ConstColorYellow:      Color{R: 255, G: 255, B: 0, A: 255},
	ConstColorOrange:      Color{R: 255, G: 165, B: 0, A: 255},
	ConstColorPurple:      Color{R: 128, G: 0, B: 128, A: 255},
	ConstColorBrown:       Color{R: 139, G: 69, B: 19, A: 255},
	ConstColorPink:        Color{R: 255, G: 192, B: 203, A: 255},
	ConstColorTan:         Color{R: 210, G: 180, B: 140, A: 255},
	ConstColorRuby:        Color{R: 224, G: 17, B: 95, A: 255},
	ConstColorEmerald:     Color{R: 80, G: 200, B: 120, A: 255},
	ConstColorSapphire:    Color{R: 15, G: 82, B: 186, A: 255},
	ConstColorSilver:      Color{R: 192, G: 192, B: 192, A: 255},
	ConstColorSmoke:       Color{R: 115, G: 130, B: 118, A: 255},

	ConstVector2One:  Vector2{X: 1, Y: 1},
	ConstVector2Zero: Vector2{X: 0, Y: 0},

	ConstVector3One:     Vector3{X: 1, Y: 1, Z: 1},
	ConstVector3Zero:    Vector3{X: 0, Y: 0, Z: 0},
	ConstVector3Forward: Vector3{X: 0, Y: 0, Z: 1},
	ConstVector3Up:      Vector3{X: 0, Y: 1, Z: 0},
	ConstVector3Right:   Vector3{X: 1, Y: 0, Z: 0},

	ConstVector4One:  Vector4{X: 1, Y: 1, Z: 1, W: 1},
	ConstVector4Zero: Vector4{X: 0, Y: 0, Z: 0, W: 0},

	ConstRotationZero: Rotation{X: 0, Y: 0, Z: 0},
}

// constantSelectors is the reverse of constantValues, generated once
// at init time rather than hand-maintained, so the two tables can
// never drift apart.
var constantSelectors = make(map[Value]uint8, len(constantValues))

func init() {
	for sel, v := range constantValues {
		constantSelectors[v] = sel
	}
}

// lookupConstant returns the Value for a well-known selector byte.
func lookupConstant(sel uint8) (Value, bool) {
	v, ok := constantValues[sel]
	return v, ok
}

// findConstant returns the selector byte for v, if v is equal to one
// of the registered well-known constants.
func findConstant(v Value) (uint8, bool) {
	sel, ok := constantSelectors[v]
	return sel, ok
}

// isConstantEligible reports whether v's dynamic type is one of the
// (comparable, non-slice-backed) built-in types that ever appear in
// constantValues. Every other Value type — including the ones backed
// by slices, which are not hashable and would panic a map lookup — is
// never eligible.
func isConstantEligible(v Value) bool {
	switch v.(type) {
	case Color, Vector2, Vector3, Vector4, Rotation, ObjectRef64:
		return true
	default:
		return false
	}
}
