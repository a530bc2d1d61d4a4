// Command hsz is a thin stdin/stdout pump over the heatshrink codec:
// it compresses standard input to standard output, or decompresses with -d.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/heatshrink"
)

func main() {
	decompress := flag.Bool("d", false, "decompress instead of compress")
	window := flag.Uint("w", heatshrink.DefaultWindowBits, "window exponent (8..15)")
	lookahead := flag.Uint("l", heatshrink.DefaultLookaheadBits, "lookahead exponent (3..w-1)")
	flag.Parse()

	if err := run(*decompress, uint8(*window), uint8(*lookahead)); err != nil {
		fmt.Fprintln(os.Stderr, "hsz:", err)
		os.Exit(1)
	}
}

func run(decompress bool, window, lookahead uint8) error {
	if decompress {
		r, err := heatshrink.NewReader(os.Stdin, &heatshrink.DecoderOptions{
			WindowBits:      window,
			LookaheadBits:   lookahead,
			InputBufferSize: heatshrink.DefaultInputBufferSize,
		})
		if err != nil {
			return err
		}
		_, err = io.Copy(os.Stdout, r)

		return err
	}

	w, err := heatshrink.NewWriter(os.Stdout, &heatshrink.EncoderOptions{
		WindowBits:    window,
		LookaheadBits: lookahead,
	})
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, os.Stdin); err != nil {
		return err
	}

	return w.Close()
}
