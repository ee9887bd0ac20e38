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

	"github.com/kestrelgames/playerdata/bitarray"
	"github.com/kestrelgames/playerdata/enum"
	"github.com/kestrelgames/playerdata/refid"
)

func f32payload(vals ...float32) []byte {
	out := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

func readF32s(payload []byte, n int) ([]float32, error) {
	if len(payload) != 4*n {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrTruncated, 4*n, len(payload))
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.BigEndian.Uint32(payload[i*4:]))
	}
	return out, nil
}

func (b *Buffer) encodeVector3(v Vector3) error {
	b.WriteExt(TagVector3, f32payload(v.X, v.Y, v.Z))
	return nil
}

func decodeVector3(payload []byte) (Value, error) {
	f, err := readF32s(payload, 3)
	if err != nil {
		return nil, err
	}
	return Vector3{X: f[0], Y: f[1], Z: f[2]}, nil
}

func (b *Buffer) encodeRotation(v Rotation) error {
	b.WriteExt(TagRotation, f32payload(v.X, v.Y, v.Z))
	return nil
}

func decodeRotation(payload []byte) (Value, error) {
	f, err := readF32s(payload, 3)
	if err != nil {
		return nil, err
	}
	return Rotation{X: f[0], Y: f[1], Z: f[2]}, nil
}

func (b *Buffer) encodeColor(v Color) error {
	b.WriteExt(TagColor, []byte{v.R, v.G, v.B, v.A})
	return nil
}

func decodeColor(payload []byte) (Value, error) {
	if len(payload) != 4 {
		return nil, fmt.Errorf("%w: color payload must be 4 bytes, got %d", ErrTruncated, len(payload))
	}
	return Color{R: payload[0], G: payload[1], B: payload[2], A: payload[3]}, nil
}

func (b *Buffer) encodeVector2(v Vector2) error {
	b.WriteExt(TagVector2, f32payload(v.X, v.Y))
	return nil
}

func decodeVector2(payload []byte) (Value, error) {
	f, err := readF32s(payload, 2)
	if err != nil {
		return nil, err
	}
	return Vector2{X: f[0], Y: f[1]}, nil
}

func (b *Buffer) encodeVector4(v Vector4) error {
	b.WriteExt(TagVector4, f32payload(v.X, v.Y, v.Z, v.W))
	return nil
}

func decodeVector4(payload []byte) (Value, error) {
	f, err := readF32s(payload, 4)
	if err != nil {
		return nil, err
	}
	return Vector4{X: f[0], Y: f[1], Z: f[2], W: f[3]}, nil
}

// encodePlayerID128 always emits the 16-byte fixed-size payload; the
// decision between PlayerID128 and PlayerIDString is made by
// NewPlayerIDValue, which callers should prefer over constructing
// PlayerID128 directly from an unvalidated id.
func (b *Buffer) encodePlayerID128(v PlayerID128) error {
	var payload [16]byte
	binary.BigEndian.PutUint64(payload[0:8], v.Hi)
	binary.BigEndian.PutUint64(payload[8:16], v.Lo)
	b.WriteExt(TagPlayerID128, payload[:])
	return nil
}

func decodePlayerID128(payload []byte) (Value, error) {
	if len(payload) != 16 {
		return nil, fmt.Errorf("%w: PlayerID128 payload must be 16 bytes, got %d", ErrTruncated, len(payload))
	}
	return PlayerID128{
		Hi: binary.BigEndian.Uint64(payload[0:8]),
		Lo: binary.BigEndian.Uint64(payload[8:16]),
	}, nil
}

func (b *Buffer) encodePlayerIDString(v PlayerIDString) error {
	b.WriteExt(TagPlayerIDString, []byte(v))
	return nil
}

func decodePlayerIDString(payload []byte) (Value, error) {
	return PlayerIDString(payload), nil
}

// NewPlayerIDValue picks PlayerID128 when id round-trips losslessly
// through the hex parse/format pair, and PlayerIDString otherwise.
func NewPlayerIDValue(id string) Value {
	hi, lo, ok := refid.ParsePlayerID(id)
	if ok && refid.FormatPlayerID(hi, lo) == id {
		return PlayerID128{Hi: hi, Lo: lo}
	}
	return PlayerIDString(id)
}

func (b *Buffer) encodeObjectRef64(v ObjectRef64) error {
	var payload [8]byte
	binary.BigEndian.PutUint64(payload[:], uint64(v))
	b.WriteExt(TagObjectRef64, payload[:])
	return nil
}

func decodeObjectRef64(payload []byte) (Value, error) {
	if len(payload) != 8 {
		return nil, fmt.Errorf("%w: ObjectRef64 payload must be 8 bytes, got %d", ErrTruncated, len(payload))
	}
	return ObjectRef64(binary.BigEndian.Uint64(payload)), nil
}

func (b *Buffer) encodeObjectRefString(v ObjectRefString) error {
	b.WriteExt(TagObjectRefString, []byte(v))
	return nil
}

func decodeObjectRefString(payload []byte) (Value, error) {
	return ObjectRefString(payload), nil
}

// NewObjectRefValue picks ObjectRef64 when id's hex prefix round-trips
// losslessly, and ObjectRefString otherwise, mirroring
// NewPlayerIDValue.
func NewObjectRefValue(id string) Value {
	v, ok := refid.ParseObjectRef(id)
	if ok && refid.FormatObjectRef(v) == id {
		return ObjectRef64(v)
	}
	return ObjectRefString(id)
}

func decodeConstant(payload []byte) (Value, error) {
	if len(payload) != 1 {
		return nil, fmt.Errorf("%w: constant payload must be 1 byte, got %d", ErrTruncated, len(payload))
	}
	v, ok := lookupConstant(payload[0])
	if !ok {
		return nil, fmt.Errorf("%w: selector %d", ErrUnknownConstant, payload[0])
	}
	return v, nil
}

func (b *Buffer) encodeBitArray(v BitArrayValue, cfg Config) error {
	if v.Bits == nil {
		return fmt.Errorf("%w: nil BitArray", ErrInvalidArgument)
	}
	payload := make([]byte, 0, 1+len(v.Bits.Bytes()))
	payload = append(payload, v.Bits.BitsInLastByte())
	payload = append(payload, v.Bits.Bytes()...)
	b.WriteExt(TagBitArray, payload)
	return nil
}

func decodeBitArray(payload []byte) (Value, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("%w: BitArray payload must carry at least 1 header byte", ErrTruncated)
	}
	ba, err := bitarray.FromBytes(payload[1:], payload[0])
	if err != nil {
		return nil, err
	}
	return BitArrayValue{Bits: ba}, nil
}

// encodeEnum writes the nested msgpack encoding of (keys_array,
// values_array): an array of two elements, the first an array of
// string keys and the second an array of integer values, both in the
// enum's sort order.
func (b *Buffer) encodeEnum(v EnumValue, cfg Config) error {
	if v.Enum == nil {
		return fmt.Errorf("%w: nil Enum", ErrInvalidArgument)
	}
	entries := v.Enum.Entries()
	keys := make(Array, len(entries))
	values := make(Array, len(entries))
	for i, e := range entries {
		keys[i] = Str(e.Key)
		values[i] = Int(e.Value)
	}
	pair := Array{keys, values}
	var nested Buffer
	if err := nested.encodeArray(pair, cfg); err != nil {
		return err
	}
	b.WriteExt(TagEnum, nested.Bytes())
	return nil
}

func decodeEnum(payload []byte) (Value, error) {
	v, rest, err := decodeValueCursor(payload, DefaultConfig())
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: enum payload", ErrExtraBytes)
	}
	pair, ok := v.(Array)
	if !ok || len(pair) != 2 {
		return nil, fmt.Errorf("%w: enum payload must be a 2-element array", ErrTruncated)
	}
	keys, ok1 := pair[0].(Array)
	values, ok2 := pair[1].(Array)
	if !ok1 || !ok2 || len(keys) != len(values) {
		return nil, fmt.Errorf("%w: enum key/value arrays mismatched", ErrTruncated)
	}
	kv := make(map[string]int, len(keys))
	for i := range keys {
		k, ok := keys[i].(Str)
		if !ok {
			return nil, fmt.Errorf("%w: enum key must be a string", ErrTruncated)
		}
		val, err := asInt(values[i])
		if err != nil {
			return nil, err
		}
		kv[string(k)] = val
	}
	e, err := enum.New(kv)
	if err != nil {
		return nil, err
	}
	return EnumValue{Enum: e}, nil
}

func asInt(v Value) (int, error) {
	switch x := v.(type) {
	case Int:
		return int(x), nil
	case Uint:
		return int(x), nil
	default:
		return 0, fmt.Errorf("%w: expected integer, got %T", ErrTruncated, v)
	}
}

func buildDefaultRegistry() *Registry {
	r := NewRegistry()
	type binding struct {
		tag int8
		dec ExtDecoder
	}
	for _, bnd := range []binding{
		{TagVector3, decodeVector3},
		{TagRotation, decodeRotation},
		{TagColor, decodeColor},
		{TagVector2, decodeVector2},
		{TagVector4, decodeVector4},
		{TagPlayerID128, decodePlayerID128},
		{TagPlayerIDString, decodePlayerIDString},
		{TagObjectRef64, decodeObjectRef64},
		{TagObjectRefString, decodeObjectRefString},
		{TagConstant, decodeConstant},
		{TagBitArray, decodeBitArray},
		{TagEnum, decodeEnum},
	} {
		r.decoders[bnd.tag] = bnd.dec
	}
	return r
}
