// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/heatshrink

/*
Package heatshrink implements heatshrink-style streaming LZSS compression
and decompression for memory-constrained use.

Format: a bit stream, MSB-first within each byte. Tag bit 1 = literal
(8 bits), tag bit 0 = back-reference: W-bit index (distance-1, distance
1..2^W) followed by L-bit count (length-2, length 2..2^L-1). The final
partial byte is padded with 1 bits; the decoder uses that padding to tell
end-of-stream from input underflow. W and L are not recorded in the stream
and must match on both ends. Empty input compresses to empty output.

Working memory is fixed at construction: the encoder holds a 2*2^W byte
buffer (plus the optional search index), the decoder a 2^W byte window and
a small staging buffer. Sink, poll and finish never allocate, so both
machines suspend and resume on arbitrary byte boundaries and can be driven
with one-byte buffers.

Use Compress(src, opts) / Decompress(src, opts) with nil for defaults
(W=11, L=4, indexed search).
Use NewEncoder / NewDecoder with Sink, Poll and Finish for incremental
operation with caller-owned buffers.
Use NewWriter / NewReader to compress to an io.Writer or decompress from
an io.Reader.

# Examples

Round-trip compress and decompress:

	enc, err := heatshrink.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := heatshrink.Decompress(enc, nil)
	if err != nil {
		return err
	}
	// dec equals data

Incremental encoding with small buffers:

	enc, _ := heatshrink.NewEncoder(&heatshrink.EncoderOptions{WindowBits: 8, LookaheadBits: 4})
	out := make([]byte, 64)
	for len(data) > 0 {
		n, err := enc.Sink(data)
		if err != nil {
			return err
		}
		data = data[n:]
		for {
			m, more := enc.Poll(out)
			emit(out[:m])
			if !more {
				break
			}
		}
	}
	for !enc.Finish() {
		m, _ := enc.Poll(out)
		emit(out[:m])
	}

Stream through io adapters:

	w, _ := heatshrink.NewWriter(dst, nil)
	if _, err := io.Copy(w, src); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
*/
package heatshrink
