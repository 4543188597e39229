// core/reads/parser.go
package reads

import "io"

// Parser is a lazy, single-pass stream of reads. The usual loop is:
//
//	p, err := reads.New(reads.FormatFasta, reads.PathSource("in.fa"), reads.Config{})
//	if err != nil { ... }
//	defer p.Close()
//	for p.Next() {
//		r := p.Read()
//		...
//	}
//	if err := p.Err(); err != nil { ... }
//
// When the parser owns the underlying stream (path sources), it is released
// on exhaustion, on error, or by Close — whichever comes first. Close is
// idempotent and safe after exhaustion.
type Parser interface {
	// Next advances to the next read. It returns false on exhaustion or
	// error; check Err afterwards.
	Next() bool
	// Read returns the read produced by the last successful Next.
	Read() Read
	// Err returns the first error encountered, or nil on clean exhaustion.
	Err() error
	// Close releases the owned input stream, if any.
	Close() error
}

// base carries the pieces shared by every format parser.
type base struct {
	lines  lineIter
	closer io.Closer // non-nil only when the parser owns the stream
	cur    Read
	err    error
	done   bool
}

func newBase(src Source) (base, error) {
	lines, closer, err := src.open()
	if err != nil {
		return base{}, err
	}
	return base{lines: lines, closer: closer}, nil
}

func (b *base) Read() Read { return b.cur }

func (b *base) Err() error { return b.err }

func (b *base) Close() error {
	if b.closer == nil {
		return nil
	}
	c := b.closer
	b.closer = nil
	return c.Close()
}

// stop records a terminal condition and releases the owned stream.
// It always returns false so callers can `return b.stop(err)`.
func (b *base) stop(err error) bool {
	if err != nil && b.err == nil {
		b.err = err
	}
	b.done = true
	_ = b.Close()
	return false
}

// EachBase streams every base of every read's sequence through fn, in
// input order. It consumes the parser and returns the parser's error, or
// fn's error if fn stops the iteration early (the owned stream is released
// either way).
func EachBase(p Parser, fn func(byte) error) error {
	for p.Next() {
		seq := p.Read().Seq
		for i := 0; i < len(seq); i++ {
			if err := fn(seq[i]); err != nil {
				_ = p.Close()
				return err
			}
		}
	}
	return p.Err()
}
