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

package lzw

// The pipeline façade always compresses at literal width 8, where the
// clear code (256) packs to a first byte of exactly 0x00 in LSB order
// or 0x80 in MSB order. That makes the first payload byte double as
// an order discriminator, so a 4-byte header ("l", "z", "w", plus that
// byte) is enough to make a compressed blob self-describing without
// carrying the order out-of-band.
const (
	headerLen      = 4
	facadeLitWidth = 8
)

var magic = [3]byte{'l', 'z', 'w'}

// EncodeFramed compresses data at the fixed literal width the pipeline
// façade uses and prepends the three magic bytes; the payload's own
// first byte completes the self-describing 4-byte header.
func EncodeFramed(data []byte, order Order) ([]byte, error) {
	enc, err := NewEncoder(facadeLitWidth, order)
	if err != nil {
		return nil, err
	}
	payload, err := enc.EncodeAll(data)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(magic)+len(payload))
	out = append(out, magic[:]...)
	out = append(out, payload...)
	return out, nil
}

// DecodeFramed reverses EncodeFramed. It reports ok=false, leaving err
// nil, when data doesn't carry a recognized header — the pipeline
// façade treats that as "not compressed" and passes the bytes through
// verbatim rather than treating it as an error.
func DecodeFramed(data []byte) (out []byte, ok bool, err error) {
	if len(data) < headerLen || data[0] != magic[0] || data[1] != magic[1] || data[2] != magic[2] {
		return nil, false, nil
	}
	var order Order
	switch data[3] {
	case 0x00:
		order = LSB
	case 0x80:
		order = MSB
	default:
		return nil, false, nil
	}
	dec, err := NewDecoder(facadeLitWidth, order)
	if err != nil {
		return nil, false, err
	}
	decoded, err := dec.DecodeAll(data[len(magic):])
	if err != nil {
		return nil, false, err
	}
	return decoded, true, nil
}
