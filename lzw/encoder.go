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

// Encoder compresses a byte string with variable-width LZW. It owns
// its hash table as a fixed-size array so repeated EncodeAll calls
// (one per player-data field, in the pipeline façade's hot path) never
// allocate; Reset clears the table for reuse without giving it back to
// the garbage collector.
type Encoder struct {
	litWidth int
	order    Order
	table    [tableSize]uint32 // 0 = empty; else (key<<12)|value
	writer   bitWriter
}

// NewEncoder returns an Encoder for the given literal width (2..8)
// and bit order.
func NewEncoder(litWidth int, order Order) (*Encoder, error) {
	if err := checkLitWidth(litWidth); err != nil {
		return nil, err
	}
	return &Encoder{litWidth: litWidth, order: order}, nil
}

// Reset clears the hash table so the Encoder can compress unrelated
// input without any leftover dictionary state.
func (e *Encoder) Reset() {
	for i := range e.table {
		e.table[i] = 0
	}
}

// EncodeAll compresses data in one shot and returns the packed byte
// stream: a leading clear code, one code per byte or matched run, and
// a trailing eof code.
func (e *Encoder) EncodeAll(data []byte) ([]byte, error) {
	e.Reset()

	clear := 1 << e.litWidth
	eof := clear + 1
	litMax := clear - 1

	width := e.litWidth + 1
	hi := eof
	overflow := 1 << width

	e.writer.reset(e.order, e.writer.buf[:0])
	e.writer.emit(uint32(clear), width)

	if len(data) == 0 {
		e.writer.emit(uint32(eof), width)
		return e.writer.finish(), nil
	}

	if int(data[0]) > litMax {
		return nil, ErrLiteralOverflow
	}
	code := int(data[0])

	for _, raw := range data[1:] {
		l := int(raw)
		if l > litMax {
			return nil, ErrLiteralOverflow
		}
		key := uint32(code)<<8 | uint32(l)
		value, slot, found := e.lookup(key)
		if found {
			code = int(value)
			continue
		}

		e.writer.emit(uint32(code), width)
		code = l
		hi++

		if hi >= overflow {
			width++
			overflow = 1 << width
		}
		if hi >= maxCode {
			e.writer.emit(uint32(clear), width)
			width = e.litWidth + 1
			hi = clear + 1
			overflow = 1 << width
			e.Reset()
		} else {
			e.table[slot] = (key << 12) | uint32(hi)
		}
	}

	e.writer.emit(uint32(code), width)
	hi++
	if hi >= overflow {
		width++
		overflow = 1 << width
	}
	e.writer.emit(uint32(eof), width)
	return e.writer.finish(), nil
}

// lookup probes the hash table for key, returning the empty slot found
// along the probe chain when key is absent so the caller can insert
// there without re-walking the chain.
func (e *Encoder) lookup(key uint32) (value uint32, slot uint32, found bool) {
	h := ((key >> 12) ^ key) & tableMask
	for {
		entry := e.table[h]
		if entry == 0 {
			return 0, h, false
		}
		if entry>>12 == key {
			return entry & maxCode, h, true
		}
		h = (h + 1) & tableMask
	}
}
