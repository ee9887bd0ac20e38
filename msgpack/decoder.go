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

// Decode decodes exactly one top-level value from data. It fails with
// ErrExtraBytes if bytes remain after the value, unless the caller
// wants the "decode one value, return position" behavior, which is
// DecodeValue.
func Decode(data []byte, cfg Config) (Value, error) {
	v, rest, err := decodeValueCursor(data, cfg)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d bytes remaining", ErrExtraBytes, len(rest))
	}
	return v, nil
}

// DecodeValue decodes one value from the front of data and returns
// the unconsumed remainder, without requiring data to be fully
// consumed.
func DecodeValue(data []byte, cfg Config) (Value, []byte, error) {
	return decodeValueCursor(data, cfg)
}

func need(data []byte, n int) error {
	if len(data) < n {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, n, len(data))
	}
	return nil
}

func decodeValueCursor(data []byte, cfg Config) (Value, []byte, error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("%w: empty input", ErrTruncated)
	}
	c := data[0]
	rest := data[1:]

	switch {
	case c <= posFixintHighCode:
		return Int(c), rest, nil
	case c >= negFixintLowCode:
		return Int(int8(c)), rest, nil
	case c >= fixstrLowCode && c <= fixstrHighCode:
		n := int(c & fixstrMask)
		return readStr(rest, n)
	case c >= fixarrayLowCode && c <= fixarrayHighCode:
		n := int(c & fixarrayMask)
		return readArray(rest, n, cfg)
	case c >= fixmapLowCode && c <= fixmapHighCode:
		n := int(c & fixmapMask)
		return readMap(rest, n, cfg)
	}

	switch c {
	case nilCode:
		return Nil{}, rest, nil
	case falseCode:
		return Bool(false), rest, nil
	case trueCode:
		return Bool(true), rest, nil
	case uint8Code:
		if err := need(rest, 1); err != nil {
			return nil, nil, err
		}
		return Uint(rest[0]), rest[1:], nil
	case uint16Code:
		if err := need(rest, 2); err != nil {
			return nil, nil, err
		}
		return Uint(binary.BigEndian.Uint16(rest)), rest[2:], nil
	case uint32Code:
		if err := need(rest, 4); err != nil {
			return nil, nil, err
		}
		return Uint(binary.BigEndian.Uint32(rest)), rest[4:], nil
	case uint64Code:
		if err := need(rest, 8); err != nil {
			return nil, nil, err
		}
		return Uint(binary.BigEndian.Uint64(rest)), rest[8:], nil
	case int8Code:
		if err := need(rest, 1); err != nil {
			return nil, nil, err
		}
		return Int(int8(rest[0])), rest[1:], nil
	case int16Code:
		if err := need(rest, 2); err != nil {
			return nil, nil, err
		}
		return Int(int16(binary.BigEndian.Uint16(rest))), rest[2:], nil
	case int32Code:
		if err := need(rest, 4); err != nil {
			return nil, nil, err
		}
		return Int(int32(binary.BigEndian.Uint32(rest))), rest[4:], nil
	case int64Code:
		if err := need(rest, 8); err != nil {
			return nil, nil, err
		}
		return Int(int64(binary.BigEndian.Uint64(rest))), rest[8:], nil
	case float32Code:
		if err := need(rest, 4); err != nil {
			return nil, nil, err
		}
		return Float32(math.Float32frombits(binary.BigEndian.Uint32(rest))), rest[4:], nil
	case float64Code:
		if err := need(rest, 8); err != nil {
			return nil, nil, err
		}
		return Float64(math.Float64frombits(binary.BigEndian.Uint64(rest))), rest[8:], nil
	case str8Code:
		if err := need(rest, 1); err != nil {
			return nil, nil, err
		}
		return readStr(rest[1:], int(rest[0]))
	case str16Code:
		if err := need(rest, 2); err != nil {
			return nil, nil, err
		}
		n := int(binary.BigEndian.Uint16(rest))
		return readStr(rest[2:], n)
	case str32Code:
		if err := need(rest, 4); err != nil {
			return nil, nil, err
		}
		n := int(binary.BigEndian.Uint32(rest))
		return readStr(rest[4:], n)
	case bin8Code:
		if err := need(rest, 1); err != nil {
			return nil, nil, err
		}
		return readBin(rest[1:], int(rest[0]))
	case bin16Code:
		if err := need(rest, 2); err != nil {
			return nil, nil, err
		}
		n := int(binary.BigEndian.Uint16(rest))
		return readBin(rest[2:], n)
	case bin32Code:
		if err := need(rest, 4); err != nil {
			return nil, nil, err
		}
		n := int(binary.BigEndian.Uint32(rest))
		return readBin(rest[4:], n)
	case array16Code:
		if err := need(rest, 2); err != nil {
			return nil, nil, err
		}
		n := int(binary.BigEndian.Uint16(rest))
		return readArray(rest[2:], n, cfg)
	case array32Code:
		if err := need(rest, 4); err != nil {
			return nil, nil, err
		}
		n := int(binary.BigEndian.Uint32(rest))
		return readArray(rest[4:], n, cfg)
	case map16Code:
		if err := need(rest, 2); err != nil {
			return nil, nil, err
		}
		n := int(binary.BigEndian.Uint16(rest))
		return readMap(rest[2:], n, cfg)
	case map32Code:
		if err := need(rest, 4); err != nil {
			return nil, nil, err
		}
		n := int(binary.BigEndian.Uint32(rest))
		return readMap(rest[4:], n, cfg)
	case fixext1Code:
		return readExt(rest, 1, cfg)
	case fixext2Code:
		return readExt(rest, 2, cfg)
	case fixext4Code:
		return readExt(rest, 4, cfg)
	case fixext8Code:
		return readExt(rest, 8, cfg)
	case fixext16Code:
		return readExt(rest, 16, cfg)
	case ext8Code:
		if err := need(rest, 1); err != nil {
			return nil, nil, err
		}
		return readExt(rest[1:], int(rest[0]), cfg)
	case ext16Code:
		if err := need(rest, 2); err != nil {
			return nil, nil, err
		}
		n := int(binary.BigEndian.Uint16(rest))
		return readExt(rest[2:], n, cfg)
	case ext32Code:
		if err := need(rest, 4); err != nil {
			return nil, nil, err
		}
		n := int(binary.BigEndian.Uint32(rest))
		return readExt(rest[4:], n, cfg)
	}
	return nil, nil, fmt.Errorf("%w: unrecognized prefix byte 0x%02x", ErrTruncated, c)
}

func readStr(data []byte, n int) (Value, []byte, error) {
	if err := need(data, n); err != nil {
		return nil, nil, err
	}
	return Str(data[:n]), data[n:], nil
}

func readBin(data []byte, n int) (Value, []byte, error) {
	if err := need(data, n); err != nil {
		return nil, nil, err
	}
	out := make([]byte, n)
	copy(out, data[:n])
	return Bin(out), data[n:], nil
}

func readArray(data []byte, n int, cfg Config) (Value, []byte, error) {
	out := make(Array, n)
	for i := 0; i < n; i++ {
		v, rest, err := decodeValueCursor(data, cfg)
		if err != nil {
			return nil, nil, err
		}
		out[i] = v
		data = rest
	}
	return out, data, nil
}

// readMap decodes n (key, value) pairs. Entries whose key decodes to
// nil or NaN are discarded, and numeric keys that collapse to the
// same canonical value keep the last write.
func readMap(data []byte, n int, cfg Config) (Value, []byte, error) {
	order := make([]string, 0, n)
	slot := make(map[string]MapEntry, n)
	for i := 0; i < n; i++ {
		k, rest, err := decodeValueCursor(data, cfg)
		if err != nil {
			return nil, nil, err
		}
		data = rest
		v, rest, err := decodeValueCursor(data, cfg)
		if err != nil {
			return nil, nil, err
		}
		data = rest

		ck, ok := canonicalKey(k)
		if !ok {
			continue
		}
		if _, dup := slot[ck]; !dup {
			order = append(order, ck)
		}
		slot[ck] = MapEntry{Key: k, Value: v}
	}
	out := make(Map, 0, len(order))
	for _, ck := range order {
		out = append(out, slot[ck])
	}
	return out, data, nil
}

// canonicalKey returns a comparable string form of a map key, and
// false if the key must be discarded (nil or NaN).
func canonicalKey(v Value) (string, bool) {
	switch x := v.(type) {
	case Nil:
		return "", false
	case Bool:
		return fmt.Sprintf("b:%v", bool(x)), true
	case Int:
		return fmt.Sprintf("n:%g", float64(x)), true
	case Uint:
		return fmt.Sprintf("n:%g", float64(x)), true
	case Float32:
		f := float64(x)
		if math.IsNaN(f) {
			return "", false
		}
		return fmt.Sprintf("n:%g", f), true
	case Float64:
		if math.IsNaN(float64(x)) {
			return "", false
		}
		return fmt.Sprintf("n:%g", float64(x)), true
	case Str:
		return "s:" + string(x), true
	case Bin:
		return "bin:" + string(x), true
	default:
		return fmt.Sprintf("v:%#v", v), true
	}
}

func readExt(data []byte, n int, cfg Config) (Value, []byte, error) {
	if err := need(data, 1+n); err != nil {
		return nil, nil, err
	}
	tag := int8(data[0])
	payload := data[1 : 1+n]
	v, err := cfg.registry().decode(tag, payload)
	if err != nil {
		return nil, nil, err
	}
	return v, data[1+n:], nil
}
