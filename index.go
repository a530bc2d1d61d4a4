package heatshrink

// buildIndex rebuilds the two-byte-prefix chains over the whole buffer.
// head stores position+1 so the clear is a plain zero fill; next threads
// earlier positions sharing the prefix, most recent first. Rebuilt on every
// fill because saveBacklog shifts all positions.
func (e *Encoder) buildIndex() {
	for i := range e.head {
		e.head[i] = 0
	}

	end := e.inputOffset() + e.inputSize
	for i := 0; i+1 < end; i++ {
		prefix := uint32(e.buf[i])<<8 | uint32(e.buf[i+1])
		e.next[i] = e.head[prefix] - 1
		e.head[prefix] = int32(i) + 1
	}
}

// findLongestMatch returns the distance and length of the longest match for
// buf[end:end+maxlen] within buf[start:end), or (0, 0) when no match of at
// least minMatchLength exists. Ties on length go to the most recent
// (closest) position: candidates are visited in descending position order
// and only a strictly longer match displaces the current best.
func (e *Encoder) findLongestMatch(start, end, maxlen int) (dist, length int) {
	if maxlen < minMatchLength {
		return 0, 0
	}

	buf := e.buf
	needle := buf[end : end+maxlen]
	bestLen := minMatchLength - 1
	bestPos := -1

	if e.head == nil {
		for pos := end - 1; pos >= start; pos-- {
			// A candidate that cannot beat the current best fails here first.
			if buf[pos+bestLen] != needle[bestLen] {
				continue
			}
			n := matchLen(buf[pos:], needle)
			if n > bestLen {
				bestLen = n
				bestPos = pos
				if n == maxlen {
					break
				}
			}
		}
	} else {
		// Walk the prefix chain from the position just before end. Every
		// candidate already matches two bytes, and the chain runs out of
		// window within 1<<windowBits links.
		for pos := e.next[end]; pos >= int32(start); pos = e.next[pos] {
			p := int(pos)
			if buf[p+bestLen] != needle[bestLen] {
				continue
			}
			n := matchLen(buf[p:], needle)
			if n > bestLen {
				bestLen = n
				bestPos = p
				if n == maxlen {
					break
				}
			}
		}
	}

	if bestPos < 0 {
		return 0, 0
	}

	return end - bestPos, bestLen
}

// matchLen counts leading bytes equal between hay and needle, at most
// len(needle). Matches may run into the needle itself: hay extends past the
// search position, which is how short-distance runs reach full length.
func matchLen(hay, needle []byte) int {
	n := 0
	for n < len(needle) && hay[n] == needle[n] {
		n++
	}

	return n
}
