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
	"encoding/binary"
	"fmt"
	"math"
)

// Buffer accumulates the wire encoding of a Value tree. Unlike
// ion/writer.go's Buffer, MessagePack container headers carry an
// explicit element count up front, so there is no need for the
// teacher's segment/backpatch bookkeeping: the length of every
// Array/Map is already known (it's a Go slice length) before a single
// byte of the container is written.
type Buffer struct {
	buf []byte
}

// Bytes returns the accumulated wire bytes.
func (b *Buffer) Bytes() []byte { return b.buf }

// Reset empties the buffer while keeping its backing array, so a
// Buffer can be reused across successive Encode calls the way the
// codec's other scratch-owning components are reset rather than
// reallocated.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

func (b *Buffer) byte(v byte) { b.buf = append(b.buf, v) }

func (b *Buffer) bytes(v []byte) { b.buf = append(b.buf, v...) }

func (b *Buffer) u8(v uint8)   { b.buf = append(b.buf, v) }
func (b *Buffer) u16(v uint16) { b.buf = binary.BigEndian.AppendUint16(b.buf, v) }
func (b *Buffer) u32(v uint32) { b.buf = binary.BigEndian.AppendUint32(b.buf, v) }
func (b *Buffer) u64(v uint64) { b.buf = binary.BigEndian.AppendUint64(b.buf, v) }

// WriteNil appends the wire nil value.
func (b *Buffer) WriteNil() { b.byte(nilCode) }

// WriteBool appends the wire boolean value.
func (b *Buffer) WriteBool(v bool) {
	if v {
		b.byte(trueCode)
	} else {
		b.byte(falseCode)
	}
}

// WriteUint appends the smallest unsigned-family encoding that fits v
// (posfixint, then uint8/16/32/64).
func (b *Buffer) WriteUint(v uint64) {
	switch {
	case v <= posFixintHighCode:
		b.u8(uint8(v))
	case v <= math.MaxUint8:
		b.byte(uint8Code)
		b.u8(uint8(v))
	case v <= math.MaxUint16:
		b.byte(uint16Code)
		b.u16(uint16(v))
	case v <= math.MaxUint32:
		b.byte(uint32Code)
		b.u32(uint32(v))
	default:
		b.byte(uint64Code)
		b.u64(v)
	}
}

// WriteInt appends the smallest signed-family encoding that fits v
// (negative/positive fixint, then int8/16/32/64).
func (b *Buffer) WriteInt(v int64) {
	switch {
	case v >= 0 && v <= posFixintHighCode:
		b.u8(uint8(v))
	case v < 0 && v >= -32:
		b.byte(uint8(int8(v)))
	case v >= math.MinInt8 && v <= math.MaxInt8:
		b.byte(int8Code)
		b.byte(uint8(int8(v)))
	case v >= math.MinInt16 && v <= math.MaxInt16:
		b.byte(int16Code)
		b.u16(uint16(int16(v)))
	case v >= math.MinInt32 && v <= math.MaxInt32:
		b.byte(int32Code)
		b.u32(uint32(int32(v)))
	default:
		b.byte(int64Code)
		b.u64(uint64(v))
	}
}

// writeIntMode encodes n honoring IntegerMode: UnsignedMode prefers
// uint* encodings for non-negative values, SignedMode always uses the
// signed family.
func (b *Buffer) writeIntMode(n int64, mode IntegerMode) {
	if n >= 0 && mode == UnsignedMode {
		b.WriteUint(uint64(n))
		return
	}
	b.WriteInt(n)
}

// WriteFloat32 appends a float32 value.
func (b *Buffer) WriteFloat32(v float32) {
	b.byte(float32Code)
	b.u32(math.Float32bits(v))
}

// WriteFloat64 appends a float64 value.
func (b *Buffer) WriteFloat64(v float64) {
	b.byte(float64Code)
	b.u64(math.Float64bits(v))
}

func (b *Buffer) writeFloatMode(v float64, mode NumberMode) {
	if mode == FloatMode {
		b.WriteFloat32(float32(v))
	} else {
		b.WriteFloat64(v)
	}
}

// WriteString appends s using the str* family selected by mode.
func (b *Buffer) WriteString(s string, mode StringMode) {
	if mode == BinaryMode {
		b.WriteBinary([]byte(s))
		return
	}
	n := len(s)
	switch {
	case n <= 31:
		b.byte(byte(fixstrLowCode | n))
	case mode == StringMode8 && n <= math.MaxUint8:
		b.byte(str8Code)
		b.u8(uint8(n))
	case n <= math.MaxUint16:
		b.byte(str16Code)
		b.u16(uint16(n))
	default:
		b.byte(str32Code)
		b.u32(uint32(n))
	}
	b.bytes([]byte(s))
}

// WriteBinary appends v using the bin* family.
func (b *Buffer) WriteBinary(v []byte) {
	n := len(v)
	switch {
	case n <= math.MaxUint8:
		b.byte(bin8Code)
		b.u8(uint8(n))
	case n <= math.MaxUint16:
		b.byte(bin16Code)
		b.u16(uint16(n))
	default:
		b.byte(bin32Code)
		b.u32(uint32(n))
	}
	b.bytes(v)
}

// WriteArrayHeader appends an array header for n elements; the
// caller is responsible for then writing exactly n values.
func (b *Buffer) WriteArrayHeader(n int) {
	switch {
	case n <= 15:
		b.byte(byte(fixarrayLowCode | n))
	case n <= math.MaxUint16:
		b.byte(array16Code)
		b.u16(uint16(n))
	default:
		b.byte(array32Code)
		b.u32(uint32(n))
	}
}

// WriteMapHeader appends a map header for n entries; the caller is
// responsible for then writing exactly n (key, value) pairs.
func (b *Buffer) WriteMapHeader(n int) {
	switch {
	case n <= 15:
		b.byte(byte(fixmapLowCode | n))
	case n <= math.MaxUint16:
		b.byte(map16Code)
		b.u16(uint16(n))
	default:
		b.byte(map32Code)
		b.u32(uint32(n))
	}
}

// WriteExt appends an extension value: tag plus payload, using the
// smallest fixext size that fits, or ext8/16/32 otherwise.
func (b *Buffer) WriteExt(tag int8, payload []byte) {
	n := len(payload)
	switch n {
	case 1:
		b.byte(fixext1Code)
	case 2:
		b.byte(fixext2Code)
	case 4:
		b.byte(fixext4Code)
	case 8:
		b.byte(fixext8Code)
	case 16:
		b.byte(fixext16Code)
	default:
		switch {
		case n <= math.MaxUint8:
			b.byte(ext8Code)
			b.u8(uint8(n))
		case n <= math.MaxUint16:
			b.byte(ext16Code)
			b.u16(uint16(n))
		default:
			b.byte(ext32Code)
			b.u32(uint32(n))
		}
	}
	b.byte(uint8(tag))
	b.bytes(payload)
}

// Encode renders v to a fresh byte slice under cfg.
func Encode(v Value, cfg Config) ([]byte, error) {
	var b Buffer
	if err := b.encodeValue(v, cfg); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Measure returns the length Encode(v, cfg) would produce, without
// the caller needing to keep the resulting bytes around.
func Measure(v Value, cfg Config) (int, error) {
	var b Buffer
	if err := b.encodeValue(v, cfg); err != nil {
		return 0, err
	}
	return len(b.buf), nil
}

func (b *Buffer) encodeValue(v Value, cfg Config) error {
	if v == nil {
		b.WriteNil()
		return nil
	}
	// Prefer a well-known constant shortcut whenever the value is
	// equal to one, even if the caller passed the expanded form. Only
	// the built-in domain types that back constantValues are ever
	// comparable map keys; guard with a type switch first so an
	// Array/Map/Bin value (backed by a slice, and therefore
	// unhashable) never reaches the map lookup.
	if isConstantEligible(v) {
		if sel, ok := findConstant(v); ok {
			b.WriteExt(TagConstant, []byte{sel})
			return nil
		}
	}
	switch x := v.(type) {
	case Nil:
		b.WriteNil()
	case Bool:
		b.WriteBool(bool(x))
	case Int:
		b.writeIntMode(int64(x), cfg.Integer)
	case Uint:
		b.WriteUint(uint64(x))
	case Float32:
		b.writeFloatMode(float64(x), cfg.Number)
	case Float64:
		b.writeFloatMode(float64(x), cfg.Number)
	case Str:
		b.WriteString(string(x), cfg.String)
	case Bin:
		b.WriteBinary([]byte(x))
	case Array:
		return b.encodeArray(x, cfg)
	case Map:
		return b.encodeMap(x, cfg)
	case Ext:
		b.WriteExt(x.Tag, x.Payload)
	case Vector3:
		return b.encodeVector3(x)
	case Rotation:
		return b.encodeRotation(x)
	case Color:
		return b.encodeColor(x)
	case Vector2:
		return b.encodeVector2(x)
	case Vector4:
		return b.encodeVector4(x)
	case PlayerID128:
		return b.encodePlayerID128(x)
	case PlayerIDString:
		return b.encodePlayerIDString(x)
	case ObjectRef64:
		return b.encodeObjectRef64(x)
	case ObjectRefString:
		return b.encodeObjectRefString(x)
	case Constant:
		b.WriteExt(TagConstant, []byte{x.Selector})
	case BitArrayValue:
		return b.encodeBitArray(x, cfg)
	case EnumValue:
		return b.encodeEnum(x, cfg)
	default:
		if ok, err := cfg.registry().encodeNamed(b, fmt.Sprintf("%T", v), v); ok {
			return err
		}
		return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
	return nil
}

func (b *Buffer) encodeArray(a Array, cfg Config) error {
	b.WriteArrayHeader(len(a))
	for _, el := range a {
		if err := b.encodeValue(el, cfg); err != nil {
			return err
		}
	}
	return nil
}

// encodeMap honors ArrayMode: WithHole promotes a map whose keys are
// exactly the non-negative integers [0, maxIndex] (allowing gaps,
// padded with nil) to a plain array; WithoutHole and AlwaysAsMap
// never perform that promotion (the former is the façade default).
func (b *Buffer) encodeMap(m Map, cfg Config) error {
	if cfg.Array == WithHole {
		if arr, ok := asHoleArray(m); ok {
			return b.encodeArray(arr, cfg)
		}
	}
	b.WriteMapHeader(len(m))
	for _, e := range m {
		if err := b.encodeValue(e.Key, cfg); err != nil {
			return err
		}
		if err := b.encodeValue(e.Value, cfg); err != nil {
			return err
		}
	}
	return nil
}

// asHoleArray reports whether every key in m is a non-negative
// integer, and if so returns the padded array representation.
func asHoleArray(m Map) (Array, bool) {
	if len(m) == 0 {
		return nil, false
	}
	maxIdx := -1
	idx := make(map[int]Value, len(m))
	for _, e := range m {
		i, ok := nonNegativeIndex(e.Key)
		if !ok {
			return nil, false
		}
		idx[i] = e.Value
		if i > maxIdx {
			maxIdx = i
		}
	}
	out := make(Array, maxIdx+1)
	for i := range out {
		if v, ok := idx[i]; ok {
			out[i] = v
		} else {
			out[i] = Nil{}
		}
	}
	return out, true
}

func nonNegativeIndex(v Value) (int, bool) {
	switch x := v.(type) {
	case Int:
		if x >= 0 {
			return int(x), true
		}
	case Uint:
		return int(x), true
	}
	return 0, false
}
