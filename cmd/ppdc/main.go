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

// Command ppdc is a flag-driven operator tool for inspecting compressed
// player-data blobs and for bulk-archiving a directory of them.
package main

import (
	"flag"
	"fmt"
	"os"
)

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f, args...)
	os.Exit(1)
}

func logf(f string, args ...interface{}) {
	if f[len(f)-1] != '\n' {
		f += "\n"
	}
	fmt.Fprintf(os.Stderr, f, args...)
}

var (
	dashv       bool
	dashh       bool
	dashBackend string
)

func init() {
	flag.BoolVar(&dashv, "v", false, "verbose")
	flag.BoolVar(&dashh, "h", false, "show usage help")
	flag.StringVar(&dashBackend, "backend", "zstd", "archive backend: lzw, zstd, or s2")
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage:\n")
	fmt.Fprintf(os.Stderr, "    %s inspect <file>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        decode a compressed player-data blob and print its header, ratio, and decoded value\n")
	fmt.Fprintf(os.Stderr, "    %s [-backend lzw|zstd|s2] archive <dir> <out.tar>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        bundle every file in <dir> into a compressed tar archive\n")
	fmt.Fprintf(os.Stderr, "    %s unarchive <in.tar> <dir>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        restore every entry of a bundle produced by 'archive' into <dir>\n")
	fmt.Fprintf(os.Stderr, "flag usage:\n")
	flag.Usage()
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 || dashh {
		usage()
		os.Exit(1)
	}

	switch args[0] {
	case "inspect":
		if len(args) != 2 {
			exitf("usage: inspect <file>\n")
		}
		inspect(args[1])
	case "archive":
		if len(args) != 3 {
			exitf("usage: archive <dir> <out.tar>\n")
		}
		archiveDir(args[1], args[2], dashBackend)
	case "unarchive":
		if len(args) != 3 {
			exitf("usage: unarchive <in.tar> <dir>\n")
		}
		unarchiveDir(args[1], args[2])
	default:
		usage()
		os.Exit(1)
	}
}
