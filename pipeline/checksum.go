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

package pipeline

import (
	"encoding/binary"
	"errors"

	"github.com/dchest/siphash"

	"github.com/kestrelgames/playerdata/lzw"
	"github.com/kestrelgames/playerdata/msgpack"
)

// checksumKey is fixed rather than caller-supplied: this checksum
// exists to catch storage-layer bit rot, not to authenticate a
// sender, so there is no secret to manage.
const (
	checksumKey0 uint64 = 0x706c6179657264ab
	checksumKey1 uint64 = 0x6c7a77636865636b
)

// ErrChecksumMismatch reports that a blob's trailer does not match its
// content: a storage-corruption signal, not a codec error, so it is a
// distinct sentinel from anything in the msgpack/lzw packages.
var ErrChecksumMismatch = errors.New("pipeline: checksum mismatch")

// CompressWithChecksum behaves like Compress, then appends an 8-byte
// siphash trailer over the returned bytes. This is a non-cryptographic
// integrity aid, not part of the codec's correctness contract: a
// caller that never checks it loses nothing but early corruption
// detection.
func CompressWithChecksum(value msgpack.Value, order lzw.Order, opts Options) (Result, error) {
	res, err := Compress(value, order, opts)
	if err != nil {
		return Result{}, err
	}
	sum := siphash.Hash(checksumKey0, checksumKey1, res.Bytes)
	out := make([]byte, len(res.Bytes)+8)
	copy(out, res.Bytes)
	binary.BigEndian.PutUint64(out[len(res.Bytes):], sum)
	res.Bytes = out
	return res, nil
}

// VerifyChecksum checks the 8-byte siphash trailer appended by
// CompressWithChecksum and returns the payload with the trailer
// stripped off. It never touches the msgpack/lzw decode path — a
// caller that wants the decoded Value should pass the returned payload
// to Decompress.
func VerifyChecksum(data []byte) ([]byte, error) {
	if len(data) < 8 {
		return nil, ErrChecksumMismatch
	}
	payload, trailer := data[:len(data)-8], data[len(data)-8:]
	want := binary.BigEndian.Uint64(trailer)
	got := siphash.Hash(checksumKey0, checksumKey1, payload)
	if got != want {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}
