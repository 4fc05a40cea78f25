// Command xinterp evaluates a piecewise-linear knot table.
//
// Usage:
//
//	xinterp -knots table.yaml -forward 0,5,10
//	xinterp -knots table.yaml -inverse 21,23 -method ffill
//	xinterp -knots table.yaml -simplify 4
//
// The knot file is YAML with a value type (uint, int or float) and two
// equal-length sequences:
//
//	type: int
//	xp: [0, 10, 20]
//	fp: [-5, 0, 5]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tphakala/go-xinterp"
	"github.com/tphakala/go-xinterp/internal/cliutil"
)

// options holds parsed command-line flags.
type options struct {
	knots    string
	forward  string
	inverse  string
	method   xinterp.Method
	simplify string
	verbose  bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("xinterp", flag.ContinueOnError)
	knots := fs.String("knots", "", "YAML knot file (required)")
	forward := fs.String("forward", "", "Comma-separated indices to evaluate")
	inverse := fs.String("inverse", "", "Comma-separated values to solve for")
	method := fs.String("method", defaultMethod, "Inverse rounding: exact, nearest, ffill, bfill")
	simplify := fs.String("simplify", "", "Drop knots within this tolerance and print the result")
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *knots == "" {
		fs.Usage()
		return fmt.Errorf("missing -knots")
	}

	m, err := xinterp.ParseMethod(*method)
	if err != nil {
		return err
	}

	kf, err := loadKnots(*knots)
	if err != nil {
		return err
	}

	opts := options{
		knots:    *knots,
		forward:  *forward,
		inverse:  *inverse,
		method:   m,
		simplify: *simplify,
		verbose:  *verbose,
	}

	if opts.verbose {
		log.Printf("Knots: %s (%d %s knots)", opts.knots, len(kf.XP), kf.Type)
		log.Printf("Method: %s", opts.method)
	}

	switch kf.Type {
	case typeUint:
		return evaluate[uint64](kf, opts, stdout)
	case typeInt:
		return evaluate[int64](kf, opts, stdout)
	default:
		return evaluate[float64](kf, opts, stdout)
	}
}

// evaluate builds the table for value type F and answers the queries.
// Query failures are reported per line; only malformed input is fatal.
func evaluate[F xinterp.Value](kf *knotFile, opts options, w io.Writer) error {
	fp, err := values[F](kf)
	if err != nil {
		return err
	}

	ip, err := xinterp.New(kf.XP, fp)
	if err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	if opts.verbose {
		log.Printf("Forwardable: %v, inversable: %v", ip.Forwardable(), ip.Inversable())
	}

	if opts.simplify != "" {
		eps, err := parseValue[F](opts.simplify)
		if err != nil {
			return fmt.Errorf("invalid -simplify: %w", err)
		}
		simplified, err := ip.Simplify(eps)
		if err != nil {
			return fmt.Errorf("simplify failed: %w", err)
		}
		if opts.verbose {
			log.Printf("Simplified: %d -> %d knots", ip.Len(), simplified.Len())
		}
		xp, sfp := simplified.Knots()
		for i := range xp {
			fmt.Fprintf(w, "%d\t%v\n", xp[i], sfp[i])
		}
		ip = simplified
	}

	for _, s := range cliutil.SplitList(opts.forward) {
		x, err := cliutil.ParseIndex(s)
		if err != nil {
			return fmt.Errorf("invalid -forward: %w", err)
		}
		if f, err := ip.Forward(x); err != nil {
			fmt.Fprintf(w, "forward(%d): %v\n", x, err)
		} else {
			fmt.Fprintf(w, "forward(%d) = %v\n", x, f)
		}
	}

	for _, s := range cliutil.SplitList(opts.inverse) {
		f, err := parseValue[F](s)
		if err != nil {
			return fmt.Errorf("invalid -inverse value %q: %w", s, err)
		}
		if x, err := ip.Inverse(f, opts.method); err != nil {
			fmt.Fprintf(w, "inverse(%v, %s): %v\n", f, opts.method, err)
		} else {
			fmt.Fprintf(w, "inverse(%v, %s) = %d\n", f, opts.method, x)
		}
	}
	return nil
}
