package msgpack

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/kestrelgames/playerdata/bitarray"
	"github.com/kestrelgames/playerdata/enum"
)

func TestEncodeWireExact(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want []byte
	}{
		{"posfixint", Int(0), []byte{0x00}},
		{"posfixint-max", Int(127), []byte{0x7f}},
		{"negfixint", Int(-1), []byte{0xff}},
		{"negfixint-min", Int(-32), []byte{0xe0}},
		{"nil", Nil{}, []byte{0xc0}},
		{"false", Bool(false), []byte{0xc2}},
		{"true", Bool(true), []byte{0xc3}},
		{"uint8", Uint(200), []byte{0xcc, 200}},
		{"int16", Int(-200), []byte{0xd1, 0xff, 0x38}},
		{"fixstr", Str("hi"), []byte{0xa2, 'h', 'i'}},
		{"fixarray-empty", Array{}, []byte{0x90}},
		{"fixmap-empty", Map{}, []byte{0x80}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Encode(c.v, DefaultConfig())
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, c.want) {
				t.Errorf("got % x, want % x", got, c.want)
			}
		})
	}
}

func roundTrip(t *testing.T, v Value) Value {
	t.Helper()
	enc, err := Encode(v, DefaultConfig())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(enc, DefaultConfig())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return got
}

func TestRoundTripScalars(t *testing.T) {
	// The wire format does not record the Go type a number started as:
	// under DefaultConfig a non-negative Int above the fixint range is
	// written as uint* and decodes as Uint, a Uint within the positive
	// fixint range decodes as Int, and a Float32 is written as float64.
	cases := []struct{ in, want Value }{
		{Nil{}, Nil{}},
		{Bool(true), Bool(true)},
		{Bool(false), Bool(false)},
		{Int(0), Int(0)},
		{Int(127), Int(127)},
		{Int(128), Uint(128)},
		{Int(-1), Int(-1)},
		{Int(-32), Int(-32)},
		{Int(-33), Int(-33)},
		{Int(-1 << 40), Int(-1 << 40)},
		{Uint(0), Int(0)},
		{Uint(1 << 40), Uint(1 << 40)},
		{Float32(3.5), Float64(3.5)},
		{Float64(-2.25), Float64(-2.25)},
		{Str(""), Str("")},
		{Str("hello, world"), Str("hello, world")},
		{Bin([]byte{1, 2, 3, 0xff}), Bin([]byte{1, 2, 3, 0xff})},
	}
	for _, c := range cases {
		got := roundTrip(t, c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("round trip %#v => %#v, want %#v", c.in, got, c.want)
		}
	}
}

func TestRoundTripContainers(t *testing.T) {
	arr := Array{Int(1), Str("two"), Array{Int(3)}}
	got := roundTrip(t, arr)
	if !reflect.DeepEqual(got, arr) {
		t.Errorf("array round trip: got %#v, want %#v", got, arr)
	}

	m := Map{
		{Key: Str("a"), Value: Int(1)},
		{Key: Str("b"), Value: Bool(true)},
	}
	got = roundTrip(t, m)
	if !reflect.DeepEqual(got, m) {
		t.Errorf("map round trip: got %#v, want %#v", got, m)
	}
}

func TestMapDecoderDiscardsNilAndNaNKeys(t *testing.T) {
	var b Buffer
	b.WriteMapHeader(3)
	b.WriteNil()
	b.WriteInt(1)
	b.WriteString("ok", StringMode8)
	b.WriteInt(2)
	b.WriteFloat64(math.NaN())
	b.WriteInt(3)
	got, err := Decode(b.Bytes(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	m, ok := got.(Map)
	if !ok || len(m) != 1 {
		t.Fatalf("expected a 1-entry map, got %#v", got)
	}
}

func TestMapDecoderLastWriteWinsOnCanonicalCollision(t *testing.T) {
	var b Buffer
	b.WriteMapHeader(2)
	b.WriteInt(5)
	b.WriteString("first", StringMode8)
	b.WriteUint(5)
	b.WriteString("second", StringMode8)
	got, err := Decode(b.Bytes(), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	m := got.(Map)
	if len(m) != 1 {
		t.Fatalf("expected 1 entry after collision, got %d", len(m))
	}
	if m[0].Value != Str("second") {
		t.Fatalf("expected last write to win, got %#v", m[0].Value)
	}
}

func TestExtraBytesRejected(t *testing.T) {
	enc, _ := Encode(Int(1), DefaultConfig())
	enc = append(enc, 0xc0)
	if _, err := Decode(enc, DefaultConfig()); !errors.Is(err, ErrExtraBytes) {
		t.Fatalf("expected ErrExtraBytes, got %v", err)
	}
	v, rest, err := DecodeValue(enc, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if v != Int(1) || !bytes.Equal(rest, []byte{0xc0}) {
		t.Fatalf("DecodeValue should allow trailing bytes: v=%#v rest=% x", v, rest)
	}
}

func TestTruncatedInputFails(t *testing.T) {
	if _, err := Decode([]byte{0xcc}, DefaultConfig()); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestBuiltinExtensionsRoundTrip(t *testing.T) {
	ba, err := bitarray.New(577, false)
	if err != nil {
		t.Fatal(err)
	}
	ba.Set(3, true)
	ba.Set(500, true)
	ba.Set(576, true)

	e, err := enum.New(map[string]int{"red": 0, "green": 1, "blue": 2})
	if err != nil {
		t.Fatal(err)
	}

	vals := []Value{
		Vector3{X: 1, Y: 2, Z: 3},
		Rotation{X: 0.1, Y: 0.2, Z: 0.3},
		Color{R: 1, G: 2, B: 3, A: 4},
		Vector2{X: 5, Y: 6},
		Vector4{X: 1, Y: 2, Z: 3, W: 4},
		PlayerID128{Hi: 0x0102030405060708, Lo: 0x0a0b0c0d0e0f1011},
		PlayerIDString("not-32-hex"),
		ObjectRef64(0xdeadbeef),
		ObjectRefString("short"),
		BitArrayValue{Bits: ba},
		EnumValue{Enum: e},
	}
	for _, v := range vals {
		got := roundTrip(t, v)
		if !reflect.DeepEqual(got, v) {
			t.Errorf("round trip %#v => %#v", v, got)
		}
	}
}

func TestWellKnownConstantPreferred(t *testing.T) {
	enc, err := Encode(Color{R: 255, G: 255, B: 255, A: 255}, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{fixext1Code, uint8(TagConstant), ConstColorWhite}
	if !bytes.Equal(enc, want) {
		t.Errorf("got % x, want % x", enc, want)
	}
	got, err := Decode(enc, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(Color); !ok {
		t.Fatalf("decoded value should be a Color, got %#v", got)
	}
}

func TestUnknownConstantSelectorFails(t *testing.T) {
	var b Buffer
	b.WriteExt(TagConstant, []byte{99})
	if _, err := Decode(b.Bytes(), DefaultConfig()); !errors.Is(err, ErrUnknownConstant) {
		t.Fatalf("expected ErrUnknownConstant, got %v", err)
	}
}

func TestUnknownExtensionTagFails(t *testing.T) {
	var b Buffer
	b.WriteExt(100, []byte{1, 2, 3})
	if _, err := Decode(b.Bytes(), DefaultConfig()); !errors.Is(err, ErrUnknownExtension) {
		t.Fatalf("expected ErrUnknownExtension, got %v", err)
	}
}

func TestMeasureMatchesEncodeLength(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		v := randomValue(rng, 3)
		enc, err := Encode(v, DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		n, err := Measure(v, DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		if n != len(enc) {
			t.Fatalf("Measure = %d, len(Encode) = %d for %#v", n, len(enc), v)
		}
	}
}

func TestArrayModeWithHole(t *testing.T) {
	m := Map{
		{Key: Int(0), Value: Str("a")},
		{Key: Int(2), Value: Str("c")},
	}
	cfg := DefaultConfig()
	cfg.Array = WithHole
	enc, err := Encode(m, cfg)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := Decode(enc, cfg)
	if err != nil {
		t.Fatal(err)
	}
	arr, ok := dec.(Array)
	if !ok {
		t.Fatalf("expected array promotion, got %#v", dec)
	}
	if len(arr) != 3 {
		t.Fatalf("expected padded array of length 3, got %d", len(arr))
	}
	if arr[1] != Value(Nil{}) {
		t.Fatalf("expected hole at index 1 to be nil, got %#v", arr[1])
	}
}

func TestUnsupportedValueFails(t *testing.T) {
	type weird struct{}
	_, err := Encode(weirdValue{weird{}}, DefaultConfig())
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Fatalf("expected ErrUnsupportedValue, got %v", err)
	}
}

type weirdValue struct{ v any }

func (weirdValue) valueTag() valueKind { return kindExt }

func randomValue(rng *rand.Rand, depth int) Value {
	if depth <= 0 {
		return Int(rng.Int63n(1000) - 500)
	}
	switch rng.Intn(6) {
	case 0:
		return Nil{}
	case 1:
		return Bool(rng.Intn(2) == 0)
	case 2:
		return Int(rng.Int63n(1 << 40))
	case 3:
		return Str("s")
	case 4:
		n := rng.Intn(4)
		a := make(Array, n)
		for i := range a {
			a[i] = randomValue(rng, depth-1)
		}
		return a
	default:
		return Float64(rng.Float64())
	}
}
