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

// Package refid parses and generates the hex identifiers that back
// the PlayerID128/PlayerIDString and ObjectRef64/ObjectRefString
// extension types, reusing google/uuid (already pulled in elsewhere
// for tenant/session identifiers) for the narrower job of producing
// and validating the hex ids these extension types carry.
package refid

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// ParsePlayerID attempts to parse a 32-hex-character player id into
// two big-endian uint64 halves (the PlayerID128 payload shape). Any
// '-' separators are removed first; ok is false if what remains is not
// exactly 32 hex characters.
func ParsePlayerID(id string) (hi, lo uint64, ok bool) {
	clean := strings.ReplaceAll(id, "-", "")
	if len(clean) != 32 {
		return 0, 0, false
	}
	raw, err := hex.DecodeString(clean)
	if err != nil {
		return 0, 0, false
	}
	hi = beUint64(raw[0:8])
	lo = beUint64(raw[8:16])
	return hi, lo, true
}

// FormatPlayerID renders (hi, lo) back to the canonical 32-hex-char
// form. Used by the encoder to verify the round trip is lossless
// before it chooses the compact PlayerID128 encoding over
// PlayerIDString.
func FormatPlayerID(hi, lo uint64) string {
	var raw [16]byte
	putBeUint64(raw[0:8], hi)
	putBeUint64(raw[8:16], lo)
	return hex.EncodeToString(raw[:])
}

// ParseObjectRef parses the hex prefix of an object reference id into
// a uint64 (the ObjectRef64 payload shape). It reads up to 16 hex
// characters from the front of id; ok is false if fewer than 16 hex
// characters are available.
func ParseObjectRef(id string) (v uint64, ok bool) {
	clean := strings.ReplaceAll(id, "-", "")
	if len(clean) < 16 {
		return 0, false
	}
	raw, err := hex.DecodeString(clean[:16])
	if err != nil {
		return 0, false
	}
	return beUint64(raw), true
}

// FormatObjectRef renders v back to a 16-hex-char prefix. Used by the
// encoder to verify losslessness the same way FormatPlayerID does.
func FormatObjectRef(v uint64) string {
	var raw [8]byte
	putBeUint64(raw[:], v)
	return hex.EncodeToString(raw[:])
}

// NewObjectID generates a fresh object reference id suitable for
// fixtures. It uses the first 8 bytes (the high 64 bits) of a random
// UUID's byte representation so the result satisfies ParseObjectRef.
func NewObjectID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:8])
}

// NewPlayerID generates a fresh player id suitable for fixtures; the
// full 128 bits of a random UUID satisfy ParsePlayerID.
func NewPlayerID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

func beUint64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(b[i])
	}
	return v
}

func putBeUint64(b []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}
