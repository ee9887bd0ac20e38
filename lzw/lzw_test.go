package lzw

import (
	"bytes"
	"math/rand"
	"testing"
)

// These byte-exact vectors are the standard textbook/GIF-spec LZW
// examples, reproduced here without any container framing: just the
// clear code, the literal/match codes, and the eof code, packed at
// the given literal width and bit order.
func TestEncodeGoldenVectors(t *testing.T) {
	cases := []struct {
		name     string
		litWidth int
		order    Order
		input    string
		want     []byte
	}{
		{
			name:     "empty",
			litWidth: 7,
			order:    LSB,
			input:    "",
			want:     []byte{0x80, 0x81},
		},
		{
			name:     "hi",
			litWidth: 7,
			order:    LSB,
			input:    "Hi",
			want:     []byte{0x80, 0x48, 0x69, 0x81},
		},
		{
			name:     "tobe",
			litWidth: 7,
			order:    LSB,
			input:    "TOBEORNOTTOBEORTOBEORNOT",
			want: []byte{
				0x80, 0x54, 0x4f, 0x42, 0x45, 0x4f, 0x52, 0x4e, 0x4f, 0x54,
				0x82, 0x84, 0x86, 0x8b, 0x85, 0x87, 0x89, 0x81,
			},
		},
		{
			name:     "tobe-msb8",
			litWidth: 8,
			order:    MSB,
			input:    "TOBEORNOTTOBEORTOBEORNOT",
			want: []byte{
				0x80, 0x15, 0x09, 0xe4, 0x22, 0x29, 0x3c, 0xa4, 0x4e, 0x27,
				0x95, 0x20, 0x50, 0x48, 0x34, 0x2e, 0x0b, 0x07, 0x84,
				0xc0, 0x40,
			},
		},
		{
			// The canonical GIF LZW example.
			name:     "gif",
			litWidth: 8,
			order:    LSB,
			input:    string([]byte{0x28, 0xff, 0xff, 0xff, 0x28, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}),
			want:     []byte{0x00, 0x51, 0xfc, 0x1b, 0x28, 0x70, 0xa0, 0xc1, 0x83, 0x01, 0x01},
		},
		{
			name:     "pdf",
			litWidth: 8,
			order:    MSB,
			input:    string([]byte{0x2d, 0x2d, 0x2d, 0x2d, 0x2d, 0x41, 0x2d, 0x2d, 0x2d, 0x42}),
			want:     []byte{0x80, 0x0b, 0x60, 0x50, 0x22, 0x0c, 0x0c, 0x85, 0x01},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			enc, err := NewEncoder(c.litWidth, c.order)
			if err != nil {
				t.Fatal(err)
			}
			got, err := enc.EncodeAll([]byte(c.input))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, c.want) {
				t.Errorf("got % x, want % x", got, c.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"Hi",
		"TOBEORNOTTOBEORTOBEORNOT",
		strRepeat("ab", 500),
		strRepeat("x", 5000),
	}
	for _, order := range []Order{LSB, MSB} {
		for _, litWidth := range []int{2, 7, 8} {
			for _, in := range inputs {
				enc, err := NewEncoder(litWidth, order)
				if err != nil {
					t.Fatal(err)
				}
				compressed, err := enc.EncodeAll(clampBytes([]byte(in), litWidth))
				if err != nil {
					t.Fatalf("litWidth=%d order=%v input=%q: %v", litWidth, order, in, err)
				}
				dec, err := NewDecoder(litWidth, order)
				if err != nil {
					t.Fatal(err)
				}
				got, err := dec.DecodeAll(compressed)
				if err != nil {
					t.Fatalf("litWidth=%d order=%v input=%q: decode: %v", litWidth, order, in, err)
				}
				want := clampBytes([]byte(in), litWidth)
				if !bytes.Equal(got, want) {
					t.Fatalf("litWidth=%d order=%v: round trip mismatch: got %d bytes, want %d bytes", litWidth, order, len(got), len(want))
				}
			}
		}
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	enc, err := NewEncoder(8, LSB)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := NewDecoder(8, LSB)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 30; i++ {
		n := rng.Intn(6000)
		data := make([]byte, n)
		// Bias toward a small alphabet so the dictionary actually finds
		// repeats, exercising width growth and hash collisions.
		for j := range data {
			data[j] = byte(rng.Intn(6))
		}
		compressed, err := enc.EncodeAll(data)
		if err != nil {
			t.Fatal(err)
		}
		got, err := dec.DecodeAll(compressed)
		if err != nil {
			t.Fatalf("round %d (n=%d): %v", i, n, err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("round %d (n=%d): mismatch", i, n)
		}
	}
}

func TestLiteralOverflow(t *testing.T) {
	enc, err := NewEncoder(2, LSB)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := enc.EncodeAll([]byte{5}); err != ErrLiteralOverflow {
		t.Fatalf("expected ErrLiteralOverflow, got %v", err)
	}
}

func TestInvalidLitWidth(t *testing.T) {
	if _, err := NewEncoder(1, LSB); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument for litWidth=1, got %v", err)
	}
	if _, err := NewEncoder(9, LSB); err != ErrInvalidArgument {
		t.Fatalf("expected ErrInvalidArgument for litWidth=9, got %v", err)
	}
}

func TestFramedRoundTrip(t *testing.T) {
	for _, order := range []Order{LSB, MSB} {
		data := []byte(strRepeat("the quick brown fox jumps over the lazy dog ", 40))
		framed, err := EncodeFramed(data, order)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(framed[:3], magic[:]) {
			t.Fatalf("missing magic prefix: % x", framed[:4])
		}
		got, ok, err := DecodeFramed(framed)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("expected DecodeFramed to recognize its own header")
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("framed round trip mismatch for order=%v", order)
		}
	}
}

func TestDecodeFramedPassesThroughUnrecognized(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	got, ok, err := DecodeFramed(data)
	if err != nil {
		t.Fatal(err)
	}
	if ok || got != nil {
		t.Fatalf("expected ok=false for unframed input, got ok=%v got=%v", ok, got)
	}
}

func TestEncoderReuseAcrossCalls(t *testing.T) {
	enc, err := NewEncoder(8, LSB)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := NewDecoder(8, LSB)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"first message", "a totally different second message", ""} {
		compressed, err := enc.EncodeAll([]byte(s))
		if err != nil {
			t.Fatal(err)
		}
		got, err := dec.DecodeAll(compressed)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != s {
			t.Fatalf("got %q, want %q", got, s)
		}
	}
}

func clampBytes(b []byte, litWidth int) []byte {
	max := byte(1<<litWidth - 1)
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = c & max
	}
	return out
}

func strRepeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
