package heatshrink

import "io"

// Writer is an io.WriteCloser that compresses everything written to it and
// forwards the compressed bytes to an underlying writer. Close finishes the
// stream; the output is incomplete without it.
type Writer struct {
	dst     io.Writer
	enc     *Encoder
	scratch []byte
	err     error
	closed  bool
}

// NewWriter creates a compressing writer over w. Options nil means
// DefaultEncoderOptions().
func NewWriter(w io.Writer, opts *EncoderOptions) (*Writer, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	enc, err := NewEncoder(opts)
	if err != nil {
		return nil, err
	}

	return &Writer{
		dst:     w,
		enc:     enc,
		scratch: make([]byte, 4096),
	}, nil
}

// Write compresses p. It always consumes all of p unless the underlying
// writer fails; errors are sticky.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, ErrClosed
	}

	written := 0
	for len(p) > 0 {
		n, err := w.enc.Sink(p)
		if err != nil && err != ErrFull {
			w.err = err
			return written, err
		}
		p = p[n:]
		written += n

		if err := w.drain(); err != nil {
			return written, err
		}
	}

	return written, nil
}

// Close finishes the compressed stream and flushes the final padded byte.
// It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return nil
	}
	w.closed = true

	for !w.enc.Finish() {
		if err := w.drain(); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) drain() error {
	for {
		n, more := w.enc.Poll(w.scratch)
		if n > 0 {
			if _, err := w.dst.Write(w.scratch[:n]); err != nil {
				w.err = err
				return err
			}
		}
		if !more {
			return nil
		}
	}
}
