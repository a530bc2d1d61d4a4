package heatshrink

// decoderState enumerates the nodes of the decoder state machine.
type decoderState uint8

const (
	decTagBit          decoderState = iota // pull the literal/backref tag
	decYieldLiteral                        // pull and emit a literal byte
	decBackrefIndexMSB                     // pull the high bits of distance-1 (W > 8)
	decBackrefIndexLSB                     // pull the low bits of distance-1
	decBackrefCountMSB                     // pull the high bits of length-2 (L > 8)
	decBackrefCountLSB                     // pull the low bits of length-2
	decYieldBackref                        // replay bytes from the window
)

// Decoder is an incremental heatshrink decompressor. It keeps a 1<<W ring
// of recent output and a small staging buffer for compressed input; Sink,
// Poll and Finish are synchronous and never allocate.
//
// A truncated stream simply stops producing output; corruption that forms
// valid tokens is undetectable, as the format carries no checksum.
type Decoder struct {
	window []byte // 1<<W ring of decoded history
	br     bitReader

	headIndex   int // ring write cursor, masked on use
	outputCount int // bytes left to replay for the current backref
	outputDist  int // backref distance

	state    decoderState
	finished bool

	windowBits    uint8
	lookaheadBits uint8
	windowMask    int
}

// NewDecoder creates a decoder. Options nil means DefaultDecoderOptions().
// The window and lookahead exponents must match the ones the stream was
// encoded with; they are not recorded in the stream.
func NewDecoder(opts *DecoderOptions) (*Decoder, error) {
	if opts == nil {
		opts = DefaultDecoderOptions()
	}
	if err := validateGeometry(opts.WindowBits, opts.LookaheadBits); err != nil {
		return nil, err
	}
	if opts.InputBufferSize < 1 {
		return nil, ErrInputBufferSize
	}

	windowSize := 1 << opts.WindowBits

	return &Decoder{
		window:        make([]byte, windowSize),
		br:            newBitReader(opts.InputBufferSize),
		state:         decTagBit,
		windowBits:    opts.WindowBits,
		lookaheadBits: opts.LookaheadBits,
		windowMask:    windowSize - 1,
	}, nil
}

// Sink stages up to len(src) compressed bytes and returns how many were
// taken. ErrFull means the staging buffer must be drained with Poll first;
// ErrFinished means Finish already reported completion.
func (d *Decoder) Sink(src []byte) (int, error) {
	if d.finished {
		return 0, ErrFinished
	}

	n := d.br.sink(src)
	if n == 0 && len(src) > 0 {
		return 0, ErrFull
	}

	return n, nil
}

// Poll copies decompressed bytes into dst. more is true whenever dst filled
// up, in which case output may still be pending; false means the staged
// input is exhausted.
func (d *Decoder) Poll(dst []byte) (n int, more bool) {
	oi := outputInfo{buf: dst}

	for {
		before := d.state
		switch before {
		case decTagBit:
			d.state = d.tagBit()
		case decYieldLiteral:
			d.state = d.yieldLiteral(&oi)
		case decBackrefIndexMSB:
			d.state = d.backrefIndexMSB()
		case decBackrefIndexLSB:
			d.state = d.backrefIndexLSB()
		case decBackrefCountMSB:
			d.state = d.backrefCountMSB()
		case decBackrefCountLSB:
			d.state = d.backrefCountLSB()
		case decYieldBackref:
			d.state = d.yieldBackref(&oi)
		}

		// No transition means the machine is blocked on input or output.
		if d.state == before {
			if oi.n == len(oi.buf) {
				return oi.n, true
			}
			return oi.n, false
		}
	}
}

// Finish reports whether the stream has ended. True means the staged input
// is fully consumed with no backref replay in progress; the encoder's 1s
// padding guarantees that a completed stream lands in such a state. Once
// Finish returns true the decoder is terminal.
func (d *Decoder) Finish() bool {
	if d.finished {
		return true
	}
	if d.state == decYieldBackref {
		return false
	}
	if !d.br.drained() {
		return false
	}

	d.finished = true

	return true
}

func (d *Decoder) tagBit() decoderState {
	bits, ok := d.br.pull(1)
	if !ok {
		return decTagBit
	}
	if bits != 0 {
		return decYieldLiteral
	}

	d.outputDist = 0
	if d.windowBits > 8 {
		return decBackrefIndexMSB
	}

	return decBackrefIndexLSB
}

func (d *Decoder) yieldLiteral(oi *outputInfo) decoderState {
	if !oi.canTakeByte() {
		return decYieldLiteral
	}

	bits, ok := d.br.pull(8)
	if !ok {
		return decYieldLiteral
	}

	c := byte(bits)
	d.window[d.headIndex&d.windowMask] = c
	d.headIndex++
	oi.putByte(c)

	return decTagBit
}

func (d *Decoder) backrefIndexMSB() decoderState {
	bits, ok := d.br.pull(d.windowBits - 8)
	if !ok {
		return decBackrefIndexMSB
	}

	d.outputDist = int(bits) << 8

	return decBackrefIndexLSB
}

func (d *Decoder) backrefIndexLSB() decoderState {
	count := d.windowBits
	if count > 8 {
		count = 8
	}
	bits, ok := d.br.pull(count)
	if !ok {
		return decBackrefIndexLSB
	}

	// The wire field is distance-1.
	d.outputDist |= int(bits)
	d.outputDist++
	d.outputCount = 0
	if d.lookaheadBits > 8 {
		return decBackrefCountMSB
	}

	return decBackrefCountLSB
}

func (d *Decoder) backrefCountMSB() decoderState {
	bits, ok := d.br.pull(d.lookaheadBits - 8)
	if !ok {
		return decBackrefCountMSB
	}

	d.outputCount = int(bits) << 8

	return decBackrefCountLSB
}

func (d *Decoder) backrefCountLSB() decoderState {
	count := d.lookaheadBits
	if count > 8 {
		count = 8
	}
	bits, ok := d.br.pull(count)
	if !ok {
		return decBackrefCountLSB
	}

	// The wire field is length-2.
	d.outputCount |= int(bits)
	d.outputCount += minMatchLength

	return decYieldBackref
}

func (d *Decoder) yieldBackref(oi *outputInfo) decoderState {
	count := len(oi.buf) - oi.n
	if count == 0 {
		return decYieldBackref
	}
	if d.outputCount < count {
		count = d.outputCount
	}

	for i := 0; i < count; i++ {
		c := d.window[(d.headIndex-d.outputDist)&d.windowMask]
		oi.putByte(c)
		d.window[d.headIndex&d.windowMask] = c
		d.headIndex++
	}

	d.outputCount -= count
	if d.outputCount == 0 {
		return decTagBit
	}

	return decYieldBackref
}
