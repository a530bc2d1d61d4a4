package heatshrink

import "io"

// Reader is an io.Reader that decompresses a heatshrink stream read from an
// underlying reader. It returns io.EOF once the stream terminator has been
// reached; io.ErrUnexpectedEOF is not reported, since a truncated stream is
// indistinguishable from a complete one without out-of-band framing.
type Reader struct {
	src     io.Reader
	dec     *Decoder
	buf     []byte
	pending []byte
	eof     bool
	err     error
}

// NewReader creates a decompressing reader over r. Options nil means
// DefaultDecoderOptions().
func NewReader(r io.Reader, opts *DecoderOptions) (*Reader, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	dec, err := NewDecoder(opts)
	if err != nil {
		return nil, err
	}

	return &Reader{
		src: r,
		dec: dec,
		buf: make([]byte, 4096),
	}, nil
}

// Read fills p with decompressed bytes.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for {
		if n, _ := r.dec.Poll(p); n > 0 {
			return n, nil
		}

		if len(r.pending) > 0 {
			n, err := r.dec.Sink(r.pending)
			if err != nil {
				return 0, err
			}
			r.pending = r.pending[n:]
			continue
		}

		if r.err != nil {
			return 0, r.err
		}

		if r.eof {
			if r.dec.Finish() {
				return 0, io.EOF
			}
			// An in-progress backref still drains from the window.
			continue
		}

		n, err := r.src.Read(r.buf)
		r.pending = r.buf[:n]
		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			r.err = err
		}
	}
}
