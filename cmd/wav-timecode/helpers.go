package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-audio/wav"
	"lukechampine.com/uint128"

	"github.com/tphakala/go-xinterp"
	"github.com/tphakala/go-xinterp/internal/divop"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	rate     int
	channels int
	bitDepth int
	frames   uint64
}

// openWAVInput reads the header of a WAV file and counts its sample frames.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = inputFile.Close() }()

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}
	if err := decoder.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("failed to locate PCM data: %w", err)
	}

	info := &wavInputInfo{
		rate:     int(decoder.SampleRate),
		channels: int(decoder.NumChans),
		bitDepth: int(decoder.BitDepth),
	}
	frameSize := int64(info.channels * info.bitDepth / bitsPerByte)
	if info.rate <= 0 || frameSize <= 0 {
		return nil, fmt.Errorf("invalid WAV format: %d Hz, %d channels, %d-bit",
			info.rate, info.channels, info.bitDepth)
	}
	info.frames = uint64(decoder.PCMLen() / frameSize)

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", info.rate, info.channels, info.bitDepth)
		log.Printf("Frames: %d", info.frames)
	}
	return info, nil
}

// nominalDuration returns frames/rate rounded to the nearest nanosecond.
func (w *wavInputInfo) nominalDuration() time.Duration {
	n := uint128.From64(w.frames).Mul64(uint64(time.Second))
	q, _ := divop.Uint128(n, uint128.From64(uint64(w.rate)), divop.Nearest)
	return time.Duration(q.Lo)
}

// newTimeline maps frame indices [0, frames] onto [start, end]. A zero end
// uses the nominal duration derived from the sample rate; a measured end
// absorbs recorder clock drift.
func (w *wavInputInfo) newTimeline(start, end time.Time) (*xinterp.Timeline, error) {
	if end.IsZero() {
		end = start.Add(w.nominalDuration())
	}
	if w.frames == 0 {
		return xinterp.NewTimeline([]uint64{0}, []time.Time{start})
	}
	return xinterp.NewTimeline([]uint64{0, w.frames}, []time.Time{start, end})
}
