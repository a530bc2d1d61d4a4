package heatshrink

// encoderState enumerates the nodes of the encoder state machine.
type encoderState uint8

const (
	encNotFull            encoderState = iota // waiting for a full lookahead region
	encFilled                                 // buffer ready, (re)build the search index
	encSearch                                 // looking for the longest match
	encYieldTagBit                            // emit the literal/backref tag
	encYieldLiteral                           // emit a literal byte
	encYieldBackrefIndex                      // emit the W-bit distance-1 field
	encYieldBackrefLength                     // emit the L-bit length-2 field
	encSaveBacklog                            // slide the processed window into the backlog
	encFlushBits                              // pad and emit the final partial byte
	encDone                                   // terminal
)

// Encoder is an incremental heatshrink compressor. All state lives in the
// instance; Sink, Poll and Finish are synchronous and never allocate, so an
// encoder can be driven with arbitrarily small caller buffers.
//
// An Encoder is not safe for concurrent use and is not reusable after
// Finish has reported completion.
type Encoder struct {
	// buf holds 2<<W bytes: the previous window in the low half, the
	// pending input in the high half.
	buf  []byte
	head []int32 // most recent position+1 per two-byte prefix, 0 when empty
	next []int32 // earlier position with the same prefix, -1 when none

	inputSize   int // valid bytes in the high half of buf
	scanIndex   int // offset within the pending input being matched
	matchLength int
	matchDist   int

	bw            bitWriter
	outgoing      uint16 // bits queued for emission across poll calls
	outgoingCount uint8

	state     encoderState
	finishing bool

	windowBits    uint8
	lookaheadBits uint8
	windowSize    int // 1 << windowBits
	lookaheadSize int // 1 << lookaheadBits
}

// NewEncoder creates an encoder. Options nil means DefaultEncoderOptions().
func NewEncoder(opts *EncoderOptions) (*Encoder, error) {
	if opts == nil {
		opts = DefaultEncoderOptions()
	}
	if err := validateGeometry(opts.WindowBits, opts.LookaheadBits); err != nil {
		return nil, err
	}

	windowSize := 1 << opts.WindowBits
	e := &Encoder{
		buf:           make([]byte, 2*windowSize),
		bw:            newBitWriter(),
		state:         encNotFull,
		windowBits:    opts.WindowBits,
		lookaheadBits: opts.LookaheadBits,
		windowSize:    windowSize,
		lookaheadSize: 1 << opts.LookaheadBits,
	}
	if !opts.PlainSearch {
		e.head = make([]int32, 256*256)
		e.next = make([]int32, 2*windowSize)
	}

	return e, nil
}

// Sink copies up to len(src) bytes into the pending-input half of the
// buffer and returns how many were taken. ErrFull means the buffer holds a
// full lookahead region already; drain it with Poll. ErrFinished means
// Finish was already called.
func (e *Encoder) Sink(src []byte) (int, error) {
	if e.finishing {
		return 0, ErrFinished
	}
	if e.state != encNotFull {
		return 0, ErrFull
	}

	rem := e.windowSize - e.inputSize
	n := len(src)
	if n > rem {
		n = rem
	}
	copy(e.buf[e.windowSize+e.inputSize:], src[:n])
	e.inputSize += n

	if e.inputSize == e.windowSize {
		e.state = encFilled
	}

	return n, nil
}

// Poll copies compressed bytes into dst. more is true when dst filled up
// and output remains pending; false means the encoder has nothing further
// to emit until more input is sunk or Finish is called.
func (e *Encoder) Poll(dst []byte) (n int, more bool) {
	oi := outputInfo{buf: dst}

	for {
		before := e.state
		switch before {
		case encNotFull, encDone:
			return oi.n, false
		case encFilled:
			if e.head != nil {
				e.buildIndex()
			}
			e.state = encSearch
		case encSearch:
			e.state = e.stepSearch()
		case encYieldTagBit:
			e.state = e.yieldTagBit(&oi)
		case encYieldLiteral:
			e.state = e.yieldLiteral(&oi)
		case encYieldBackrefIndex:
			e.state = e.yieldBackrefIndex(&oi)
		case encYieldBackrefLength:
			e.state = e.yieldBackrefLength(&oi)
		case encSaveBacklog:
			e.saveBacklog()
			e.state = encNotFull
		case encFlushBits:
			e.state = e.flushBits(&oi)
		}

		// A state that could not advance is blocked on output space.
		if e.state == before && oi.n == len(oi.buf) {
			return oi.n, true
		}
	}
}

// Finish marks the end of the input stream. It returns true once every
// compressed byte, including the padded final byte, has been drained via
// Poll; until then keep alternating Poll and Finish.
func (e *Encoder) Finish() bool {
	e.finishing = true
	if e.state == encNotFull {
		e.state = encFilled
	}

	return e.state == encDone
}

// SinkAll pushes all of src through the encoder, draining into dst as
// needed. It returns the bytes consumed from src and written to dst; sunk
// may be short of len(src) when dst fills up.
func (e *Encoder) SinkAll(src, dst []byte) (sunk, polled int, err error) {
	for sunk < len(src) {
		n, err := e.Sink(src[sunk:])
		if err != nil && err != ErrFull {
			return sunk, polled, err
		}
		sunk += n

		for {
			if polled == len(dst) {
				return sunk, polled, nil
			}
			m, more := e.Poll(dst[polled:])
			polled += m
			if !more {
				break
			}
		}
	}

	return sunk, polled, nil
}

func (e *Encoder) inputOffset() int {
	return e.windowSize
}

func (e *Encoder) stepSearch() encoderState {
	// While more input may follow, only positions with a whole lookahead
	// region behind them are searched; the rest slides into the backlog so
	// chunking never changes the output.
	need := e.lookaheadSize
	if e.finishing {
		need = 1
	}
	if e.scanIndex > e.inputSize-need {
		if e.finishing {
			return encFlushBits
		}
		return encSaveBacklog
	}

	end := e.inputOffset() + e.scanIndex
	maxPossible := e.lookaheadSize - 1
	if e.inputSize-e.scanIndex < maxPossible {
		maxPossible = e.inputSize - e.scanIndex
	}

	dist, length := e.findLongestMatch(end-e.windowSize, end, maxPossible)
	if dist == 0 {
		e.scanIndex++
		e.matchLength = 0
		return encYieldTagBit
	}

	e.matchDist = dist
	e.matchLength = length

	return encYieldTagBit
}

func (e *Encoder) yieldTagBit(oi *outputInfo) encoderState {
	if !oi.canTakeByte() {
		return encYieldTagBit
	}

	if e.matchLength == 0 {
		e.bw.push(oi, literalMarker, 1)
		return encYieldLiteral
	}

	e.bw.push(oi, backrefMarker, 1)
	e.outgoing = uint16(e.matchDist - 1)
	e.outgoingCount = e.windowBits

	return encYieldBackrefIndex
}

func (e *Encoder) yieldLiteral(oi *outputInfo) encoderState {
	if !oi.canTakeByte() {
		return encYieldLiteral
	}

	// scanIndex was already advanced past the literal in stepSearch.
	e.bw.push(oi, e.buf[e.inputOffset()+e.scanIndex-1], 8)

	return encSearch
}

func (e *Encoder) yieldBackrefIndex(oi *outputInfo) encoderState {
	if !oi.canTakeByte() {
		return encYieldBackrefIndex
	}
	if e.pushOutgoingBits(oi) > 0 {
		return encYieldBackrefIndex
	}

	e.outgoing = uint16(e.matchLength - minMatchLength)
	e.outgoingCount = e.lookaheadBits

	return encYieldBackrefLength
}

func (e *Encoder) yieldBackrefLength(oi *outputInfo) encoderState {
	if !oi.canTakeByte() {
		return encYieldBackrefLength
	}
	if e.pushOutgoingBits(oi) > 0 {
		return encYieldBackrefLength
	}

	e.scanIndex += e.matchLength
	e.matchLength = 0

	return encSearch
}

// pushOutgoingBits emits the queued field in chunks of at most 8 bits,
// returning how many bits went out this step.
func (e *Encoder) pushOutgoingBits(oi *outputInfo) uint8 {
	var count uint8
	var bits byte
	if e.outgoingCount > 8 {
		count = 8
		bits = byte(e.outgoing >> (e.outgoingCount - 8))
	} else {
		count = e.outgoingCount
		bits = byte(e.outgoing)
	}

	if count > 0 {
		e.bw.push(oi, bits, count)
		e.outgoingCount -= count
	}

	return count
}

// saveBacklog slides the scanned-past bytes plus the unprocessed tail to
// the front of the buffer, so the low half again holds the window behind
// the next byte to scan.
func (e *Encoder) saveBacklog() {
	msi := e.scanIndex
	copy(e.buf, e.buf[msi:e.inputOffset()+e.inputSize])
	e.scanIndex = 0
	e.inputSize -= msi
}

func (e *Encoder) flushBits(oi *outputInfo) encoderState {
	if e.bw.aligned() {
		return encDone
	}
	if !oi.canTakeByte() {
		return encFlushBits
	}

	oi.putByte(e.bw.padded())

	return encDone
}
