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

// Decoder expands a variable-width LZW byte stream. It owns its
// suffix/prefix dictionary and scratch expansion buffer as fixed-size
// arrays so repeated DecodeAll calls never allocate dictionary state;
// Reset clears the dictionary for reuse.
type Decoder struct {
	litWidth int
	order    Order
	suffix   [maxCode + 1]byte
	prefix   [maxCode + 1]int32
	scratch  [2 * (maxCode + 1)]byte
	reader   bitReader
}

// NewDecoder returns a Decoder for the given literal width (2..8) and
// bit order. litWidth and order must match the Encoder that produced
// the stream.
func NewDecoder(litWidth int, order Order) (*Decoder, error) {
	if err := checkLitWidth(litWidth); err != nil {
		return nil, err
	}
	return &Decoder{litWidth: litWidth, order: order}, nil
}

// Reset clears dictionary state so the Decoder can expand an unrelated
// stream. The suffix/prefix arrays don't strictly need zeroing (every
// live entry is written before it's ever read), but clearing them
// keeps a Decoder's behavior independent of what a prior stream left
// behind.
func (d *Decoder) Reset() {
	for i := range d.prefix {
		d.prefix[i] = 0
	}
	for i := range d.suffix {
		d.suffix[i] = 0
	}
}

// DecodeAll expands data, a complete LZW stream produced by an
// Encoder with the same litWidth and order, back to the original
// bytes.
func (d *Decoder) DecodeAll(data []byte) ([]byte, error) {
	return d.decode(data, nil)
}

// decode is DecodeAll's implementation; yield, if non-nil, is called
// with the number of output bytes produced so far every time the
// running total crosses a 4KiB boundary, giving a caller a natural
// point to hand partial output to a host runtime without this package
// needing to know about that runtime. DecodeAll, its only caller,
// passes nil.
func (d *Decoder) decode(data []byte, yield func(producedSoFar int)) ([]byte, error) {
	d.Reset()

	clear := 1 << d.litWidth
	eof := clear + 1
	clearPlus2 := clear + 2

	width := d.litWidth + 1
	hi := eof
	overflow := 1 << width
	last := invalidCode

	d.reader.reset(d.order, data)

	var out []byte
	lastFlush := 0

	for {
		code32, ok := d.reader.next(width)
		if !ok {
			return nil, ErrUnexpectedEOF
		}
		code := int(code32)

		if code == eof {
			break
		}
		if code == clear {
			width = d.litWidth + 1
			hi = eof
			overflow = 1 << width
			last = invalidCode
			continue
		}

		var entry []byte
		switch {
		case code < clear:
			entry = d.scratch[len(d.scratch)-1:]
			d.scratch[len(d.scratch)-1] = byte(code)
		case code == hi:
			if last == invalidCode {
				return nil, ErrInvalidCode
			}
			prior := d.expand(last)
			entry = append(append([]byte{}, prior...), prior[0])
		case code < hi && code >= clearPlus2:
			entry = d.expand(code)
		default:
			return nil, ErrInvalidCode
		}

		out = append(out, entry...)
		newByte := entry[0]

		if last != invalidCode {
			d.suffix[hi] = newByte
			d.prefix[hi] = int32(last)
		}
		last = code
		hi++

		if hi == overflow {
			if width == maxWidth {
				hi--
				last = invalidCode
			} else {
				width++
				overflow = 1 << width
			}
		}

		if yield != nil && len(out)-lastFlush >= 4096 {
			yield(len(out))
			lastFlush = len(out)
		}
	}

	if yield != nil && len(out) > lastFlush {
		yield(len(out))
	}
	return out, nil
}

// expand walks code's prefix chain down to its literal root, writing
// bytes right-to-left into the tail of the scratch buffer, and
// returns the filled slice (oldest byte first).
func (d *Decoder) expand(code int) []byte {
	pos := len(d.scratch)
	c := code
	clearPlus2 := (1 << d.litWidth) + 2
	for c >= clearPlus2 {
		pos--
		d.scratch[pos] = d.suffix[c]
		c = int(d.prefix[c])
	}
	pos--
	d.scratch[pos] = byte(c)
	return d.scratch[pos:]
}
