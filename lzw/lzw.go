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

// Package lzw implements a variable code-width LZW codec: an encoder
// built on an open-addressed hash table of prefix+literal keys, and a
// decoder built on parallel suffix/prefix arrays walked from a code
// back down to its literal root. Both sides pack codes into bytes in
// either LSB-first (GIF-style) or MSB-first (PDF/TIFF-style) bit
// order.
//
// This does not aim for compatibility with any container format (GIF,
// TIFF, PDF, ...); it is the algorithm alone, plus the small framing
// header defined in header.go.
package lzw

import "errors"

// Order selects how codes are packed into bytes.
type Order int

const (
	// LSB packs the low bits of a code first (GIF bit order).
	LSB Order = iota
	// MSB packs the high bits of a code first (PDF/TIFF bit order).
	MSB
)

const (
	minLitWidth = 2
	maxLitWidth = 8
	maxWidth    = 12
	maxCode     = 1<<maxWidth - 1 // 4095

	tableBits = 14
	tableSize = 1 << tableBits
	tableMask = tableSize - 1
)

// invalidCode marks "no previous code" in the decoder. Any sentinel
// outside the valid code range
// [0, maxCode] works; this uses -1 for a plain, idiomatic Go int.
const invalidCode = -1

// ErrInvalidArgument reports a litWidth outside [2,8].
var ErrInvalidArgument = errors.New("lzw: invalid argument")

// ErrInvalidCode reports a decoded code that cannot be resolved:
// either it exceeds the highest code currently known, or it appears
// before any prefix has been established.
var ErrInvalidCode = errors.New("lzw: invalid code")

// ErrUnexpectedEOF reports an LZW stream that ran out of input before
// an eof code was seen.
var ErrUnexpectedEOF = errors.New("lzw: unexpected end of stream")

// ErrLiteralOverflow reports an input byte that does not fit in the
// configured literal width.
var ErrLiteralOverflow = errors.New("lzw: literal exceeds configured width")

func checkLitWidth(litWidth int) error {
	if litWidth < minLitWidth || litWidth > maxLitWidth {
		return ErrInvalidArgument
	}
	return nil
}
