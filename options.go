package heatshrink

import "fmt"

// EncoderOptions configures encoder construction.
type EncoderOptions struct {
	// WindowBits is the window exponent W; the match window is 1<<W bytes.
	WindowBits uint8
	// LookaheadBits is the lookahead exponent L; the longest emitted match
	// is 1<<L - 1 bytes.
	LookaheadBits uint8
	// PlainSearch disables the two-byte-prefix search index and falls back
	// to a linear window scan. Saves the index's 256 KiB head table and 4
	// bytes per buffer byte, at the cost of much slower search on
	// repetitive data.
	PlainSearch bool
}

// DecoderOptions configures decoder construction.
type DecoderOptions struct {
	WindowBits    uint8
	LookaheadBits uint8
	// InputBufferSize is the capacity of the staging buffer for compressed
	// bytes not yet consumed. Must be at least 1.
	InputBufferSize int
}

// DefaultEncoderOptions returns options for the default geometry (W=11, L=4, indexed search).
func DefaultEncoderOptions() *EncoderOptions {
	return &EncoderOptions{
		WindowBits:    DefaultWindowBits,
		LookaheadBits: DefaultLookaheadBits,
	}
}

// DefaultDecoderOptions returns options matching DefaultEncoderOptions with a 256-byte input buffer.
func DefaultDecoderOptions() *DecoderOptions {
	return &DecoderOptions{
		WindowBits:      DefaultWindowBits,
		LookaheadBits:   DefaultLookaheadBits,
		InputBufferSize: DefaultInputBufferSize,
	}
}

// validateGeometry checks the (W, L) pair shared by encoder and decoder.
func validateGeometry(windowBits, lookaheadBits uint8) error {
	if windowBits < MinWindowBits || windowBits > MaxWindowBits {
		return fmt.Errorf("%w: got %d, want %d..%d", ErrWindowBits, windowBits, MinWindowBits, MaxWindowBits)
	}
	if lookaheadBits < MinLookaheadBits || lookaheadBits >= windowBits {
		return fmt.Errorf("%w: got %d, want %d..%d", ErrLookaheadBits, lookaheadBits, MinLookaheadBits, windowBits-1)
	}

	return nil
}
