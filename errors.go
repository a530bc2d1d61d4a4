// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/heatshrink

package heatshrink

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrWindowBits      = errors.New("window exponent out of range")
	ErrLookaheadBits   = errors.New("lookahead exponent out of range")
	ErrInputBufferSize = errors.New("input buffer size must be positive")
	ErrFull            = errors.New("internal buffer is full, poll for output first")
	ErrFinished        = errors.New("sink after finish")
	ErrNilWriter       = errors.New("writer is nil")
	ErrNilReader       = errors.New("reader is nil")
	ErrClosed          = errors.New("writer is closed")
)
