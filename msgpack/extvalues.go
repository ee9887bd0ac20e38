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

import (
	"github.com/kestrelgames/playerdata/bitarray"
	"github.com/kestrelgames/playerdata/enum"
)

// Domain extension value types, one per built-in extension tag. Each
// implements Value so it can be used directly wherever a Value is
// expected, and each carries its own encode/decode logic in
// ext_builtin.go rather than going through the generic Registry path,
// because their payload layouts are contractual rather than
// pluggable.

// Vector3 is extension tag 0: three float32 (x, y, z). 3*float32 = 12
// bytes, so it rides on ext8 rather than a fixext size.
type Vector3 struct{ X, Y, Z float32 }

func (Vector3) valueTag() valueKind { return kindExt }

// Rotation is extension tag 1: three float32, same payload shape as
// Vector3 but a distinct domain type and tag.
type Rotation struct{ X, Y, Z float32 }

func (Rotation) valueTag() valueKind { return kindExt }

// Color is extension tag 2: four uint8 (r, g, b, a) via fixext4.
type Color struct{ R, G, B, A uint8 }

func (Color) valueTag() valueKind { return kindExt }

// Vector2 is extension tag 3: two float32 via fixext8.
type Vector2 struct{ X, Y float32 }

func (Vector2) valueTag() valueKind { return kindExt }

// Vector4 is extension tag 4: four float32 via fixext16.
type Vector4 struct{ X, Y, Z, W float32 }

func (Vector4) valueTag() valueKind { return kindExt }

// PlayerID128 is extension tag 5: 16 bytes, two big-endian uint64
// parsed from a 32-hex-char player id. Only produced by the encoder
// when the round trip through hex is lossless.
type PlayerID128 struct{ Hi, Lo uint64 }

func (PlayerID128) valueTag() valueKind { return kindExt }

// PlayerIDString is extension tag 6: the id carried verbatim as bytes,
// used whenever PlayerID128's lossless-round-trip condition fails.
type PlayerIDString string

func (PlayerIDString) valueTag() valueKind { return kindExt }

// ObjectRef64 is extension tag 7: a uint64 parsed from the hex prefix
// of a reference id, via fixext8.
type ObjectRef64 uint64

func (ObjectRef64) valueTag() valueKind { return kindExt }

// ObjectRefString is extension tag 8: the id carried verbatim as
// bytes.
type ObjectRefString string

func (ObjectRefString) valueTag() valueKind { return kindExt }

// Constant is extension tag 40: a 1-byte selector into the well-known
// constant table, via fixext1. Constant itself is never
// produced by Decode — decoding tag 40 resolves the selector straight
// to the Value it denotes (a Color, a Vector3, ...). Constant exists
// so callers can force the encoder to prefer the shortcut form even
// when they're holding the expanded value.
type Constant struct{ Selector uint8 }

func (Constant) valueTag() valueKind { return kindExt }

// BitArrayValue is extension tag 41: bitarray.BitArray wrapped so it
// can travel as a Value. Payload is 1 byte (bits in last byte, 0
// meaning "fully used") followed by the raw packed bytes.
type BitArrayValue struct{ Bits *bitarray.BitArray }

func (BitArrayValue) valueTag() valueKind { return kindExt }

// EnumValue is extension tag 42: enum.Enum wrapped so the whole
// bijection travels as a Value, encoded as the nested MessagePack
// encoding of the pair (keys_array, values_array).
type EnumValue struct{ Enum *enum.Enum }

func (EnumValue) valueTag() valueKind { return kindExt }
