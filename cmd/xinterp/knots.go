package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tphakala/go-xinterp"
)

// errInvalidKnots indicates a malformed knot file.
var errInvalidKnots = errors.New("invalid knot file")

// knotFile is the on-disk knot table:
//
//	type: int
//	xp: [0, 10, 20]
//	fp: [-5, 0, 5]
//
// fp is kept as a raw node until the value type is known.
type knotFile struct {
	Type string    `yaml:"type"`
	XP   []uint64  `yaml:"xp"`
	FP   yaml.Node `yaml:"fp"`
}

// loadKnots reads and validates a knot file.
func loadKnots(path string) (*knotFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knot file: %w", err)
	}
	return parseKnots(data)
}

func parseKnots(data []byte) (*knotFile, error) {
	var kf knotFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidKnots, err)
	}
	if err := kf.Validate(); err != nil {
		return nil, err
	}
	return &kf, nil
}

// Validate checks the structure of the knot file. Value ranges are checked
// when fp is decoded.
func (kf *knotFile) Validate() error {
	switch kf.Type {
	case typeUint, typeInt, typeFloat:
	case "":
		return fmt.Errorf("%w: missing type", errInvalidKnots)
	default:
		return fmt.Errorf("%w: unknown type %q (want %s, %s or %s)",
			errInvalidKnots, kf.Type, typeUint, typeInt, typeFloat)
	}

	if len(kf.XP) == 0 {
		return fmt.Errorf("%w: xp is empty", errInvalidKnots)
	}
	if kf.FP.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: fp must be a sequence", errInvalidKnots)
	}
	if len(kf.FP.Content) != len(kf.XP) {
		return fmt.Errorf("%w: xp has %d knots, fp has %d",
			errInvalidKnots, len(kf.XP), len(kf.FP.Content))
	}
	return nil
}

// values decodes fp as F.
func values[F xinterp.Value](kf *knotFile) ([]F, error) {
	var fp []F
	if err := kf.FP.Decode(&fp); err != nil {
		return nil, fmt.Errorf("%w: fp: %w", errInvalidKnots, err)
	}
	return fp, nil
}

// parseValue parses a single value of type F.
func parseValue[F xinterp.Value](s string) (F, error) {
	var zero F
	var (
		v   any
		err error
	)
	switch any(zero).(type) {
	case uint64:
		v, err = strconv.ParseUint(s, intBase, bitSize64)
	case int64:
		v, err = strconv.ParseInt(s, intBase, bitSize64)
	case float64:
		v, err = strconv.ParseFloat(s, bitSize64)
	}
	if err != nil {
		return zero, err
	}
	f, ok := v.(F)
	if !ok {
		return zero, fmt.Errorf("unsupported value type %T", zero)
	}
	return f, nil
}
