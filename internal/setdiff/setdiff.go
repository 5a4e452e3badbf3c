// Package setdiff compares two line-oriented files as sets.
package setdiff

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zeebo/blake3"
)

// Mode selects which side of the comparison is reported.
type Mode string

const (
	// OnlyA reports lines of A missing from B.
	OnlyA Mode = "only-a"
	// OnlyB reports lines of B missing from A.
	OnlyB Mode = "only-b"
	// Both reports lines present in both inputs.
	Both Mode = "both"
	// Symmetric reports lines present in exactly one input.
	Symmetric Mode = "symmetric"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case OnlyA, OnlyB, Both, Symmetric:
		return m, nil
	case "":
		return OnlyA, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want only-a, only-b, both or symmetric)", s)
	}
}

// Options controls line normalization.
type Options struct {
	Mode       Mode
	Trim       bool
	IgnoreCase bool
	SkipBlank  bool
}

// Result holds the reported lines in first-seen order.
type Result struct {
	Lines  []string
	CountA int
	CountB int
}

type digest [32]byte

type lineSet struct {
	order []string
	index map[digest]struct{}
}

func (s *lineSet) has(d digest) bool {
	_, ok := s.index[d]
	return ok
}

// Compare reads a and b fully and reports lines according to opts.Mode.
// Lines are keyed by their BLAKE3 digest so large inputs keep a fixed-size
// key per distinct line.
func Compare(ctx context.Context, a, b io.Reader, opts Options) (Result, error) {
	mode := opts.Mode
	if mode == "" {
		mode = OnlyA
	}
	setA, err := readSet(ctx, a, opts)
	if err != nil {
		return Result{}, fmt.Errorf("read first input: %w", err)
	}
	setB, err := readSet(ctx, b, opts)
	if err != nil {
		return Result{}, fmt.Errorf("read second input: %w", err)
	}

	res := Result{CountA: len(setA.order), CountB: len(setB.order)}
	switch mode {
	case OnlyA:
		res.Lines = missing(setA, setB)
	case OnlyB:
		res.Lines = missing(setB, setA)
	case Both:
		for _, line := range setA.order {
			if setB.has(key(line)) {
				res.Lines = append(res.Lines, line)
			}
		}
	case Symmetric:
		res.Lines = append(missing(setA, setB), missing(setB, setA)...)
	default:
		return Result{}, fmt.Errorf("unknown mode %q", mode)
	}
	return res, nil
}

// CompareFiles opens both paths and runs Compare.
func CompareFiles(ctx context.Context, pathA, pathB string, opts Options) (Result, error) {
	fa, err := os.Open(pathA)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		_ = fa.Close()
	}()
	fb, err := os.Open(pathB)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		_ = fb.Close()
	}()
	return Compare(ctx, fa, fb, opts)
}

func missing(from, other *lineSet) []string {
	var out []string
	for _, line := range from.order {
		if !other.has(key(line)) {
			out = append(out, line)
		}
	}
	return out
}

func readSet(ctx context.Context, r io.Reader, opts Options) (*lineSet, error) {
	set := &lineSet{index: map[digest]struct{}{}}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		if n%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		line := normalize(scanner.Text(), opts)
		if opts.SkipBlank && strings.TrimSpace(line) == "" {
			continue
		}
		d := key(line)
		if set.has(d) {
			continue
		}
		set.index[d] = struct{}{}
		set.order = append(set.order, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

func normalize(line string, opts Options) string {
	if opts.Trim {
		line = strings.TrimSpace(line)
	}
	if opts.IgnoreCase {
		line = strings.ToLower(line)
	}
	return line
}

func key(line string) digest {
	return blake3.Sum256([]byte(line))
}
