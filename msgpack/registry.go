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
	"fmt"

	"golang.org/x/exp/maps"
)

// ExtDecoder decodes an extension payload into a Value.
type ExtDecoder func(payload []byte) (Value, error)

// ExtEncoder appends the wire encoding of v (tag + payload) to dst.
type ExtEncoder func(dst *Buffer, v Value) error

// Registry is the bidirectional extension-type table: tag -> decoder,
// and type name -> encoder. Tags [0,40] are reserved for built-in
// domain types, 40 is the well-known-constant discriminator, and
// [41,127] are available for user-defined extensions (41 and 42,
// BitArray and Enum, are built-in even though they fall in that
// range).
//
// The shape mirrors ion/symtab.go's forward-slice-plus-reverse-map
// pattern: a Registry is built once (DefaultRegistry, at init) and
// then only read from during encode/decode, with Register the single
// mutating entry point for callers who want to add tags 43-127.
type Registry struct {
	decoders map[int8]ExtDecoder
	encoders map[string]ExtEncoder
	tagOf    map[string]int8
}

// NewRegistry returns an empty registry. Use DefaultRegistry for the
// built-in domain types, or Clone it and Register your own.
func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[int8]ExtDecoder),
		encoders: make(map[string]ExtEncoder),
		tagOf:    make(map[string]int8),
	}
}

// Clone returns a copy of r that can have additional types registered
// without mutating r.
func (r *Registry) Clone() *Registry {
	return &Registry{
		decoders: maps.Clone(r.decoders),
		encoders: maps.Clone(r.encoders),
		tagOf:    maps.Clone(r.tagOf),
	}
}

// Register binds tag and typeName to dec/enc. Tags outside [41,127]
// are rejected to keep the built-in range free of user-defined
// collisions, except for re-registering the two built-in tags that
// already live in that range (41 BitArray, 42 Enum).
func (r *Registry) Register(tag int8, typeName string, dec ExtDecoder, enc ExtEncoder) error {
	if (tag < 41 || tag > 127) && tag != TagBitArray && tag != TagEnum {
		return fmt.Errorf("%w: extension tag %d outside user range [41,127]", ErrInvalidArgument, tag)
	}
	r.decoders[tag] = dec
	r.encoders[typeName] = enc
	r.tagOf[typeName] = tag
	return nil
}

func (r *Registry) decode(tag int8, payload []byte) (Value, error) {
	dec, ok := r.decoders[tag]
	if !ok {
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownExtension, tag)
	}
	return dec(payload)
}

func (r *Registry) encodeNamed(dst *Buffer, typeName string, v Value) (bool, error) {
	enc, ok := r.encoders[typeName]
	if !ok {
		return false, nil
	}
	return true, enc(dst, v)
}

// DefaultRegistry holds only the built-in domain extension types; it
// is what Config.registry() falls back to when Config.Registry is
// nil.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = buildDefaultRegistry()
}
