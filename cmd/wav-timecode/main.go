// Command wav-timecode converts between sample positions in a WAV recording
// and wall-clock time.
//
// Usage:
//
//	wav-timecode -start 2024-05-01T06:00:00Z -sample 48000,96000 rec.wav
//	wav-timecode -start 2024-05-01T06:00:00Z -at 2024-05-01T06:00:01.5Z rec.wav
//	wav-timecode -start ... -end 2024-05-01T07:00:00.004Z -at ... rec.wav  # drift-corrected
//
// Without -end the recording is assumed to run at its nominal sample rate.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/tphakala/go-xinterp"
	"github.com/tphakala/go-xinterp/internal/cliutil"
)

const (
	// CLI defaults
	defaultMethod   = "nearest"
	minRequiredArgs = 1

	// Sample format
	bitsPerByte = 8
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("wav-timecode", flag.ContinueOnError)
	startFlag := fs.String("start", "", "Wall-clock time of the first sample (RFC 3339, required)")
	endFlag := fs.String("end", "", "Measured wall-clock time after the last sample (RFC 3339)")
	samples := fs.String("sample", "", "Comma-separated sample indices to convert to time")
	at := fs.String("at", "", "Comma-separated RFC 3339 times to convert to sample indices")
	method := fs.String("method", defaultMethod, "Rounding for times between samples: exact, nearest, ffill, bfill")
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < minRequiredArgs || *startFlag == "" {
		fmt.Fprintf(fs.Output(), "Usage: wav-timecode -start TIME [options] input.wav\n\n")
		fs.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	start, err := time.Parse(time.RFC3339Nano, *startFlag)
	if err != nil {
		return fmt.Errorf("invalid -start: %w", err)
	}
	var end time.Time
	if *endFlag != "" {
		if end, err = time.Parse(time.RFC3339Nano, *endFlag); err != nil {
			return fmt.Errorf("invalid -end: %w", err)
		}
	}

	m, err := xinterp.ParseMethod(*method)
	if err != nil {
		return err
	}

	info, err := openWAVInput(rest[0], *verbose)
	if err != nil {
		return err
	}

	tl, err := info.newTimeline(start, end)
	if err != nil {
		return fmt.Errorf("failed to build timeline: %w", err)
	}
	if *verbose {
		_, knots := tl.Knots()
		log.Printf("Timeline: %s .. %s", knots[0].Format(time.RFC3339Nano), knots[len(knots)-1].Format(time.RFC3339Nano))
	}

	for _, s := range cliutil.SplitList(*samples) {
		x, err := cliutil.ParseIndex(s)
		if err != nil {
			return fmt.Errorf("invalid -sample: %w", err)
		}
		if t, err := tl.Time(x); err != nil {
			fmt.Fprintf(stdout, "%d\t%v\n", x, err)
		} else {
			fmt.Fprintf(stdout, "%d\t%s\n", x, t.Format(time.RFC3339Nano))
		}
	}

	for _, s := range cliutil.SplitList(*at) {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("invalid -at %q: %w", s, err)
		}
		if x, err := tl.Index(t, m); err != nil {
			fmt.Fprintf(stdout, "%s\t%v\n", s, err)
		} else {
			fmt.Fprintf(stdout, "%s\t%d\n", s, x)
		}
	}
	return nil
}
