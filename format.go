package heatshrink

// Heatshrink wire-format constants. The stream is a bit stream, MSB-first
// within each byte: a '1' tag bit is followed by an 8-bit literal, a '0' tag
// bit by a W-bit back-reference index (distance-1) and an L-bit count
// (length-2). The final partial byte is padded with 1 bits. Window and
// lookahead exponents are not in the stream; both ends must agree on them.
const (
	MinWindowBits    = 8  // Smallest supported window exponent W (window 256 bytes).
	MaxWindowBits    = 15 // Largest supported window exponent W (window 32 KiB).
	MinLookaheadBits = 3  // Smallest supported lookahead exponent L.

	DefaultWindowBits    = 11 // CLI and nil-options default for W.
	DefaultLookaheadBits = 4  // CLI and nil-options default for L.

	DefaultInputBufferSize = 256 // Decoder staging buffer for nil options.
)

const (
	literalMarker = 1 // tag bit for a literal byte
	backrefMarker = 0 // tag bit for a back-reference

	// A back-reference is never emitted for fewer than 2 bytes.
	minMatchLength = 2
)
