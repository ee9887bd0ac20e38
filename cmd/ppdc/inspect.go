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

package main

import (
	"fmt"
	"os"

	"github.com/kestrelgames/playerdata/lzw"
	"github.com/kestrelgames/playerdata/msgpack"
	"github.com/kestrelgames/playerdata/pipeline"
)

// entry point for 'ppdc inspect <file>'
func inspect(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		exitf("reading %s: %s\n", path, err)
	}

	mp, framed, err := lzw.DecodeFramed(data)
	if err != nil {
		exitf("decoding header of %s: %s\n", path, err)
	}
	if framed {
		fmt.Printf("header: lzw-framed, %d bytes compressed -> %d bytes msgpack\n", len(data), len(mp))
	} else {
		fmt.Printf("header: unframed (soft-cap fallback), %d bytes msgpack\n", len(data))
	}
	ratio := 1.0
	if len(mp) > 0 {
		ratio = float64(len(data)) / float64(len(mp))
	}
	fmt.Printf("ratio: %.3f\n", ratio)

	v, err := pipeline.Decompress(data, msgpack.DefaultConfig())
	if err != nil {
		exitf("decoding value: %s\n", err)
	}
	if dashv {
		fmt.Printf("value (%T): %#v\n", v, v)
	} else {
		fmt.Printf("value: %#v\n", v)
	}
}
