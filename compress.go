package heatshrink

// Compress compresses src in one call, driving an Encoder to completion.
// Options nil means DefaultEncoderOptions(). Empty input yields empty
// output.
func Compress(src []byte, opts *EncoderOptions) ([]byte, error) {
	enc, err := NewEncoder(opts)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(src)/2+16)
	scratch := make([]byte, 4096)

	for len(src) > 0 {
		n, err := enc.Sink(src)
		if err != nil {
			return nil, err
		}
		src = src[n:]

		out = drainEncoder(enc, out, scratch)
	}

	for !enc.Finish() {
		out = drainEncoder(enc, out, scratch)
	}

	return out, nil
}

// drainEncoder polls until the encoder reports no more pending output.
func drainEncoder(enc *Encoder, out []byte, scratch []byte) []byte {
	for {
		n, more := enc.Poll(scratch)
		out = append(out, scratch[:n]...)
		if !more {
			return out
		}
	}
}
