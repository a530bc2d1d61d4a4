package heatshrink

// Decompress decompresses src in one call, driving a Decoder to completion.
// Options nil means DefaultDecoderOptions(). The stream carries no length,
// so the output grows as tokens decode; a truncated stream returns whatever
// decoded cleanly.
func Decompress(src []byte, opts *DecoderOptions) ([]byte, error) {
	dec, err := NewDecoder(opts)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 2*len(src)+16)
	scratch := make([]byte, 4096)

	for len(src) > 0 {
		n, err := dec.Sink(src)
		if err != nil {
			return nil, err
		}
		src = src[n:]

		out = drainDecoder(dec, out, scratch)
	}

	for !dec.Finish() {
		out = drainDecoder(dec, out, scratch)
	}

	return out, nil
}

// drainDecoder polls until the decoder reports no more pending output.
func drainDecoder(dec *Decoder, out []byte, scratch []byte) []byte {
	for {
		n, more := dec.Poll(scratch)
		out = append(out, scratch[:n]...)
		if !more {
			return out
		}
	}
}
