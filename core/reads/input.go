// core/reads/input.go
package reads

import (
	"bufio"
	"io"
	"strings"
)

// LineSeq is a pre-existing lazy sequence of lines. It has no close
// semantics; the producer owns whatever backs it.
type LineSeq interface {
	// NextLine returns the next line and true, or "" and false when the
	// sequence is exhausted.
	NextLine() (string, bool)
}

type sourceKind int

const (
	kindInvalid sourceKind = iota
	kindPath
	kindStream
	kindLines
)

// Source is the input to a parser: a filesystem path (the parser opens and
// closes it), an already-open stream (the caller owns it), or a lazy line
// sequence. The zero value is invalid.
type Source struct {
	kind  sourceKind
	path  string
	r     io.Reader
	lines LineSeq
}

// PathSource wraps a filesystem path ("-" means stdin). The parser built on
// it owns the opened file and releases it on exhaustion or Close.
func PathSource(path string) Source { return Source{kind: kindPath, path: path} }

// StreamSource wraps an already-open reader. The parser never closes it.
func StreamSource(r io.Reader) Source { return Source{kind: kindStream, r: r} }

// LineSource wraps a lazy line sequence.
func LineSource(seq LineSeq) Source { return Source{kind: kindLines, lines: seq} }

// Classify maps an arbitrary value onto a Source: strings are paths, line
// sequences and string slices are line sources, readers are streams.
// Anything else fails with an InvalidInputError.
func Classify(v any) (Source, error) {
	switch x := v.(type) {
	case Source:
		if x.kind == kindInvalid {
			return Source{}, &InvalidInputError{Value: v}
		}
		return x, nil
	case string:
		return PathSource(x), nil
	case LineSeq:
		return LineSource(x), nil
	case []string:
		return LineSource(SliceLines(x)), nil
	case io.Reader:
		return StreamSource(x), nil
	default:
		return Source{}, &InvalidInputError{Value: v}
	}
}

// open resolves the source into a line iterator plus a closer that is
// non-nil only when the parser owns the underlying stream.
func (s Source) open() (lineIter, io.Closer, error) {
	switch s.kind {
	case kindPath:
		rc, err := openReader(s.path)
		if err != nil {
			return nil, nil, err
		}
		return newScanLines(rc), rc, nil
	case kindStream:
		return newScanLines(s.r), nil, nil
	case kindLines:
		return seqLines{seq: s.lines}, nil, nil
	default:
		return nil, nil, &InvalidInputError{Value: s}
	}
}

// lineIter is the single lazy line producer every parser consumes.
type lineIter interface {
	next() (string, bool)
	err() error
}

// allow very long single-line sequences (64 MiB)
const maxLineBytes = 64 * 1024 * 1024

type scanLines struct {
	sc *bufio.Scanner
}

func newScanLines(r io.Reader) *scanLines {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLineBytes)
	return &scanLines{sc: sc}
}

func (s *scanLines) next() (string, bool) {
	if !s.sc.Scan() {
		return "", false
	}
	// bufio.ScanLines already strips the trailing \n and \r.
	return s.sc.Text(), true
}

func (s *scanLines) err() error { return s.sc.Err() }

type seqLines struct {
	seq LineSeq
}

func (s seqLines) next() (string, bool) {
	line, ok := s.seq.NextLine()
	if !ok {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (s seqLines) err() error { return nil }

// SliceLines adapts a slice of lines to a LineSeq.
func SliceLines(lines []string) LineSeq { return &sliceSeq{lines: lines} }

type sliceSeq struct {
	lines []string
	i     int
}

func (s *sliceSeq) NextLine() (string, bool) {
	if s.i >= len(s.lines) {
		return "", false
	}
	line := s.lines[s.i]
	s.i++
	return line, true
}
