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

import "errors"

// Error taxonomy for the codec. Call sites wrap these with fmt.Errorf
// and %w so the sentinel survives errors.Is while still carrying
// context, matching the convention ion/reader.go and ion/writer.go use
// for their own error paths.
var (
	// ErrInvalidArgument reports a precondition violated by the caller.
	ErrInvalidArgument = errors.New("msgpack: invalid argument")
	// ErrTruncated reports the decoder running off the end of input.
	ErrTruncated = errors.New("msgpack: truncated input")
	// ErrExtraBytes reports bytes remaining after a strict top-level decode.
	ErrExtraBytes = errors.New("msgpack: extra bytes after value")
	// ErrUnknownExtension reports an extension tag with no registered decoder.
	ErrUnknownExtension = errors.New("msgpack: unknown extension type")
	// ErrUnknownConstant reports an unrecognized well-known constant selector.
	ErrUnknownConstant = errors.New("msgpack: unknown constant selector")
	// ErrUnsupportedValue reports an encoder asked to serialize a Value
	// with no registered encoding (e.g. a Go value with no Value mapping).
	ErrUnsupportedValue = errors.New("msgpack: unsupported value")
)
