package archive

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestBackendsRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, the quick brown fox jumps over the lazy dog")
	for _, name := range []string{"lzw", "zstd", "s2"} {
		c := Compression(name)
		if c == nil {
			t.Fatalf("%s: no compressor registered", name)
		}
		if c.Name() != name {
			t.Fatalf("%s: Name() returned %q", name, c.Name())
		}
		compressed := c.Compress(data, nil)
		d := Decompression(name)
		if d == nil {
			t.Fatalf("%s: no decompressor registered", name)
		}
		got := make([]byte, len(data))
		if err := d.Decompress(compressed, got); err != nil {
			t.Fatalf("%s: decompress: %v", name, err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("%s: round trip mismatch", name)
		}
	}
}

func TestUnknownBackend(t *testing.T) {
	if Compression("bogus") != nil {
		t.Fatal("expected nil Compressor for an unknown backend")
	}
	if Decompression("bogus") != nil {
		t.Fatal("expected nil Decompressor for an unknown backend")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"alice.bin": "alice's compressed player blob",
		"bob.bin":   "bob's compressed player blob, a bit longer so zstd has something to chew on",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	for _, backend := range []string{"lzw", "zstd", "s2"} {
		var buf bytes.Buffer
		if err := Export(dir, &buf, backend); err != nil {
			t.Fatalf("%s: export: %v", backend, err)
		}
		entries, err := Import(&buf)
		if err != nil {
			t.Fatalf("%s: import: %v", backend, err)
		}
		if len(entries) != len(files) {
			t.Fatalf("%s: expected %d entries, got %d", backend, len(files), len(entries))
		}
		for _, e := range entries {
			want, ok := files[e.Name]
			if !ok {
				t.Fatalf("%s: unexpected entry %q", backend, e.Name)
			}
			if string(e.Data) != want {
				t.Fatalf("%s: entry %q mismatch: got %q, want %q", backend, e.Name, e.Data, want)
			}
		}
	}
}

func TestExportUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	if err := Export(dir, &buf, "bogus"); err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
}
