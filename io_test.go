package heatshrink

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	input := mixedInput(50000, 31)

	var compressed bytes.Buffer
	w, err := NewWriter(&compressed, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n, err := w.Write(input); err != nil || n != len(input) {
		t.Fatalf("write: n=%d err=%v", n, err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(&compressed, nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(input, got) {
		t.Fatalf("io round trip mismatch: %d vs %d bytes", len(got), len(input))
	}

	// The terminator was consumed; further reads report EOF.
	if n, err := r.Read(make([]byte, 8)); n != 0 || err != io.EOF {
		t.Fatalf("read after end: n=%d err=%v", n, err)
	}
}

func TestReaderOneByteSource(t *testing.T) {
	input := bytes.Repeat([]byte("stream me "), 300)
	enc, err := Compress(input, nil)
	if err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(iotest.OneByteReader(bytes.NewReader(enc)), nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(iotest.OneByteReader(r))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(input, got) {
		t.Fatal("one-byte reader round trip mismatch")
	}
}

func TestWriterCloseIdempotent(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("abc")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	first := buf.Len()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != first {
		t.Fatal("second Close emitted more bytes")
	}

	if _, err := w.Write([]byte("x")); err != ErrClosed {
		t.Fatalf("want ErrClosed, got %v", err)
	}
}

func TestWriterEmptyStream(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("empty stream produced %d bytes", buf.Len())
	}
}

func TestNilUnderlying(t *testing.T) {
	if _, err := NewWriter(nil, nil); err != ErrNilWriter {
		t.Fatalf("want ErrNilWriter, got %v", err)
	}
	if _, err := NewReader(nil, nil); err != ErrNilReader {
		t.Fatalf("want ErrNilReader, got %v", err)
	}
}
