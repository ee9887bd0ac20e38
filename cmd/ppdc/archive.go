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
	"os"
	"path/filepath"

	"github.com/kestrelgames/playerdata/archive"
)

// entry point for 'ppdc archive <dir> <out.tar>'
func archiveDir(dir, out, backend string) {
	f, err := os.Create(out)
	if err != nil {
		exitf("creating %s: %s\n", out, err)
	}
	defer f.Close()
	if dashv {
		logf("archiving %s into %s using %s", dir, out, backend)
	}
	if err := archive.Export(dir, f, backend); err != nil {
		exitf("archiving %s: %s\n", dir, err)
	}
}

// entry point for 'ppdc unarchive <in.tar> <dir>'
func unarchiveDir(in, dir string) {
	f, err := os.Open(in)
	if err != nil {
		exitf("opening %s: %s\n", in, err)
	}
	defer f.Close()
	entries, err := archive.Import(f)
	if err != nil {
		exitf("reading %s: %s\n", in, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		exitf("creating %s: %s\n", dir, err)
	}
	for _, e := range entries {
		if dashv {
			logf("restoring %s (%d bytes)", e.Name, len(e.Data))
		}
		if err := os.WriteFile(filepath.Join(dir, e.Name), e.Data, 0o644); err != nil {
			exitf("writing %s: %s\n", e.Name, err)
		}
	}
}
