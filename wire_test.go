package heatshrink

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/icza/bitio"
)

// Golden streams for W=8, L=4, pinned so the wire format cannot drift:
//
//	""         -> ""
//	"a"        -> 1 01100001 + 1111111            = b0 ff
//	"aaaaaaaa" -> 1 01100001 0 00000000 0101 + 11 = b0 80 17
//	            (literal 'a', then backref distance 1, length 7)
func TestGoldenVectors(t *testing.T) {
	cases := []struct {
		input string
		hex   string
	}{
		{"", ""},
		{"a", "b0ff"},
		{"aaaaaaaa", "b08017"},
	}

	eo, do := geometry(8, 4)
	for _, c := range cases {
		enc, err := Compress([]byte(c.input), eo)
		if err != nil {
			t.Fatal(err)
		}
		if got := hex.EncodeToString(enc); got != c.hex {
			t.Fatalf("encode(%q) = %s, want %s", c.input, got, c.hex)
		}

		want, err := hex.DecodeString(c.hex)
		if err != nil {
			t.Fatal(err)
		}
		dec, err := Decompress(want, do)
		if err != nil {
			t.Fatal(err)
		}
		if string(dec) != c.input {
			t.Fatalf("decode(%s) = %q, want %q", c.hex, dec, c.input)
		}
	}
}

func TestPaddingTerminator(t *testing.T) {
	// 9 bits of tokens leave 7 padding bits; 22 bits leave 2.
	cases := []struct {
		input string
		mask  byte
	}{
		{"a", 0x7F},
		{"aaaaaaaa", 0x03},
	}
	eo, _ := geometry(8, 4)
	for _, c := range cases {
		enc, err := Compress([]byte(c.input), eo)
		if err != nil {
			t.Fatal(err)
		}
		last := enc[len(enc)-1]
		if last&c.mask != c.mask {
			t.Fatalf("encode(%q): trailing bits of %02x are not all ones (mask %02x)", c.input, last, c.mask)
		}
	}
}

// refDecode re-decodes a complete stream token by token with an independent
// bit reader, trusting only the documented wire layout. Backrefs past the
// start of output read the zero-initialized window.
func refDecode(t *testing.T, comp []byte, windowBits, lookaheadBits uint8) []byte {
	t.Helper()
	r := bitio.NewReader(bytes.NewReader(comp))

	var out []byte
	for {
		tag, err := r.ReadBits(1)
		if err != nil {
			break
		}
		if tag == literalMarker {
			lit, err := r.ReadBits(8)
			if err != nil {
				// The 1s padding parses as the start of a literal.
				break
			}
			out = append(out, byte(lit))
			continue
		}

		idx, err := r.ReadBits(windowBits)
		if err != nil {
			t.Fatalf("stream ends inside a backref index after %d bytes of output", len(out))
		}
		cnt, err := r.ReadBits(lookaheadBits)
		if err != nil {
			t.Fatalf("stream ends inside a backref count after %d bytes of output", len(out))
		}

		dist := int(idx) + 1
		length := int(cnt) + 2
		for i := 0; i < length; i++ {
			if p := len(out) - dist; p >= 0 {
				out = append(out, out[p])
			} else {
				out = append(out, 0)
			}
		}
	}

	return out
}

func TestWireFormatAgainstBitReader(t *testing.T) {
	inputs := [][]byte{
		[]byte("hello hello hello, heatshrink"),
		mixedInput(6000, 17),
		make([]byte, 3000),
	}
	geometries := []struct{ w, l uint8 }{
		{8, 4},   // single-state index and count pulls
		{11, 4},  // split index pull (W > 8)
		{12, 9},  // split index and count pulls (L > 8)
		{15, 14}, // maximum geometry
	}
	for _, g := range geometries {
		for _, input := range inputs {
			enc, err := Compress(input, &EncoderOptions{WindowBits: g.w, LookaheadBits: g.l})
			if err != nil {
				t.Fatal(err)
			}
			got := refDecode(t, enc, g.w, g.l)
			if !bytes.Equal(got, input) {
				t.Fatalf("w=%d l=%d: independent bit-level decode mismatch: %d vs %d bytes",
					g.w, g.l, len(got), len(input))
			}
		}
	}
}

func TestDecodeHandAuthoredStream(t *testing.T) {
	// Author a stream directly: 'h', 'i', then a backref of distance 2 and
	// length 4 replaying "hihi". 31 token bits plus one 1 padding bit.
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, wr := range []struct {
		v uint64
		n uint8
	}{
		{1, 1}, {uint64('h'), 8},
		{1, 1}, {uint64('i'), 8},
		{0, 1}, {1, 8}, {2, 4}, // index = distance-1, count = length-2
		{1, 1}, // padding
	} {
		if err := w.WriteBits(wr.v, wr.n); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	dec, err := Decompress(buf.Bytes(), &DecoderOptions{WindowBits: 8, LookaheadBits: 4, InputBufferSize: 4})
	if err != nil {
		t.Fatal(err)
	}
	if string(dec) != "hihihi" {
		t.Fatalf("decoded %q, want %q", dec, "hihihi")
	}
}

func TestEncodeMatchesBitAuthoredGolden(t *testing.T) {
	// Rebuild the "aaaaaaaa" golden stream with bitio and compare it with
	// the encoder's own output byte for byte.
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, wr := range []struct {
		v uint64
		n uint8
	}{
		{1, 1}, {uint64('a'), 8},
		{0, 1}, {0, 8}, {5, 4},
		{3, 2}, // padding
	} {
		if err := w.WriteBits(wr.v, wr.n); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	enc, err := Compress(bytes.Repeat([]byte("a"), 8), &EncoderOptions{WindowBits: 8, LookaheadBits: 4})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(enc, buf.Bytes()) {
		t.Fatalf("encoder stream %x differs from bit-authored stream %x", enc, buf.Bytes())
	}
}
