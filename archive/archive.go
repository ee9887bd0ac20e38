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

// Package archive provides a bulk export/import path for many players'
// compressed data at once, entirely separate from the per-frame
// pipeline façade. Operator tooling (cmd/ppdc) uses this to snapshot
// or restore a whole population with a selectable backend: the repo's
// own LZW codec, zstd, or s2.
package archive

import (
	"fmt"

	"github.com/kestrelgames/playerdata/lzw"
)

// Compressor describes the interface a bulk-export backend implements.
type Compressor interface {
	// Name is the name of the compression algorithm.
	Name() string
	// Compress should append the compressed contents of src to dst and
	// return the result.
	Compress(src, dst []byte) []byte
}

// Decompressor is the interface a bulk-import backend implements.
type Decompressor interface {
	// Name is the name of the compression algorithm. See also
	// Compressor.Name.
	Name() string
	// Decompress decompresses src into dst. dst must already be sized
	// to hold the decompressed output.
	Decompress(src, dst []byte) error
}

// lzwCompressor adapts this repo's own codec to the Compressor
// interface, always running it at the pipeline façade's fixed literal
// width so blobs produced here can also be read back by
// lzw.DecodeFramed.
type lzwCompressor struct {
	order lzw.Order
}

func (l lzwCompressor) Name() string { return "lzw" }

func (l lzwCompressor) Compress(src, dst []byte) []byte {
	framed, err := lzw.EncodeFramed(src, l.order)
	if err != nil {
		// EncodeFramed only fails on a literal byte that doesn't fit
		// in 8 bits, which cannot happen for a []byte source.
		panic(err)
	}
	return append(dst, framed...)
}

type lzwDecompressor struct{}

func (lzwDecompressor) Name() string { return "lzw" }

func (lzwDecompressor) Decompress(src, dst []byte) error {
	out, ok, err := lzw.DecodeFramed(src)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("archive: %q block is not lzw-framed", "lzw")
	}
	if len(out) != len(dst) {
		return fmt.Errorf("archive: expected %d bytes decompressed, got %d", len(dst), len(out))
	}
	copy(dst, out)
	return nil
}

// Compression selects a bulk-export backend by name: "lzw" (this
// repo's own codec, LSB-packed), "zstd", or "s2" (both from
// klauspost/compress). It returns nil for an unrecognized name.
func Compression(name string) Compressor {
	switch name {
	case "lzw":
		return lzwCompressor{order: lzw.LSB}
	case "zstd":
		return newZstdCompressor()
	case "s2":
		return s2Compressor{}
	default:
		return nil
	}
}

// Decompression selects a bulk-import backend by name, mirroring
// Compression.
func Decompression(name string) Decompressor {
	switch name {
	case "lzw":
		return lzwDecompressor{}
	case "zstd":
		return zstdSharedDecoder()
	case "s2":
		return s2Compressor{}
	default:
		return nil
	}
}
