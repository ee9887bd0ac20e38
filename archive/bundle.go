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

package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// sizeHeader is the PAXRecords key used to carry the original,
// uncompressed size of a bundle entry, since tar's own Size field
// holds the size of the bytes actually written to the stream (the
// compressed size).
const sizeHeader = "PLAYERDATA.rawsize"

// Export walks dir non-recursively, compressing each regular file
// with the named backend and writing the results to out as a tar
// stream. It is meant for operator-triggered bulk snapshots of many
// players' compressed-blob files at once, not for the per-frame hot
// path.
func Export(dir string, out io.Writer, backend string) error {
	c := Compression(backend)
	if c == nil {
		return fmt.Errorf("archive: unknown backend %q", backend)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	tw := tar.NewWriter(out)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return err
		}
		compressed := c.Compress(raw, nil)
		hdr := &tar.Header{
			Name:    e.Name(),
			Size:    int64(len(compressed)),
			Mode:    int64(info.Mode().Perm()),
			ModTime: info.ModTime(),
			PAXRecords: map[string]string{
				sizeHeader: fmt.Sprintf("%d", len(raw)),
				"PLAYERDATA.backend": backend,
			},
			Format: tar.FormatPAX,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if _, err := tw.Write(compressed); err != nil {
			return err
		}
	}
	return tw.Close()
}

// Entry is one decompressed member of a bundle produced by Export.
type Entry struct {
	Name string
	Data []byte
}

// Import reads a tar stream produced by Export and decompresses each
// entry using the backend recorded in its own header, returning the
// restored contents in stream order.
func Import(in io.Reader) ([]Entry, error) {
	tr := tar.NewReader(in)
	var out []Entry
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		backend := hdr.PAXRecords["PLAYERDATA.backend"]
		d := Decompression(backend)
		if d == nil {
			return nil, fmt.Errorf("archive: entry %q uses unknown backend %q", hdr.Name, backend)
		}
		var rawSize int
		if _, err := fmt.Sscanf(hdr.PAXRecords[sizeHeader], "%d", &rawSize); err != nil {
			return nil, fmt.Errorf("archive: entry %q missing raw size header: %w", hdr.Name, err)
		}
		compressed, err := io.ReadAll(tr)
		if err != nil {
			return nil, err
		}
		raw := make([]byte, rawSize)
		if err := d.Decompress(compressed, raw); err != nil {
			return nil, fmt.Errorf("archive: entry %q: %w", hdr.Name, err)
		}
		out = append(out, Entry{Name: hdr.Name, Data: raw})
	}
	return out, nil
}
