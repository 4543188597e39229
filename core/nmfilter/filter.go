// core/nmfilter/filter.go

// Package nmfilter filters a name-sorted stream of paired alignments by
// NM-tag edit distance. A pair is written to the sink only when both
// members individually stay at or under the threshold (percent of read
// length); reads that cannot be paired are counted and dropped, or are
// fatal when so configured.
package nmfilter

import "context"

// Alignment is a read-only view of one decoded alignment record.
type Alignment interface {
	// Name is the query (read) name; pairs share it.
	Name() string
	// Length is the read's sequence length in bases.
	Length() int
	// EditDistance is the NM-tag value. Its absence is an error.
	EditDistance() (int, error)
}

// Next pulls the next alignment from the stream. ok=false with a nil error
// means clean end of stream.
type Next func() (Alignment, bool, error)

// Sink receives both members of every accepted pair, in input order.
type Sink func(Alignment) error

const (
	// DefaultThreshold is the NM threshold in percent per bp of read length.
	DefaultThreshold = 2.0
	// DefaultWarnRatio is the unpaired/paired ratio above which the input
	// is probably not sorted by read name.
	DefaultWarnRatio = 0.75
)

// Options controls pairing and acceptance policy.
type Options struct {
	Threshold     float64 // percent per bp of read length
	UnpairedFatal bool    // fail on the first unpaired read
	CheckPairs    bool    // verify adjacent reads share a name; resync on mismatch
	WarnRatio     float64 // unpaired/paired ratio that triggers the unsorted warning
	Warnf         func(format string, args ...any)
}

// DefaultOptions returns the conventional policy: 2%/bp threshold, pair
// checking on, unpaired reads skipped and counted.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, CheckPairs: true, WarnRatio: DefaultWarnRatio}
}

// Stats reports how many reads were evaluated as pairs and how many were
// discarded as unpaired.
type Stats struct {
	Paired   int
	Unpaired int
}

// UnpairedReadError is returned when an unpaired read is found and
// Options.UnpairedFatal is set.
type UnpairedReadError struct {
	Name string
}

func (e *UnpairedReadError) Error() string { return "unpaired read found: " + e.Name }

// Run consumes the alignment stream two reads at a time. When pair
// checking is enabled and the candidate pair's names differ, it discards
// the first read (counted as unpaired) and shifts forward until the names
// match or the stream ends. A matched (or trusted-adjacent) pair is
// written to the sink only if both members pass the threshold.
func Run(ctx context.Context, next Next, write Sink, opt Options) (Stats, error) {
	var st Stats
	warnf := opt.Warnf
	if warnf == nil {
		warnf = func(string, ...any) {}
	}

stream:
	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		a, ok, err := next()
		if err != nil {
			return st, err
		}
		if !ok {
			break
		}
		b, ok, err := next()
		if err != nil {
			return st, err
		}
		if !ok {
			if opt.UnpairedFatal {
				return st, &UnpairedReadError{Name: a.Name()}
			}
			st.Unpaired++
			break
		}
		if opt.CheckPairs {
			for a.Name() != b.Name() {
				if opt.UnpairedFatal {
					return st, &UnpairedReadError{Name: a.Name()}
				}
				st.Unpaired++
				a = b
				b, ok, err = next()
				if err != nil {
					return st, err
				}
				if !ok {
					st.Unpaired++
					break stream
				}
			}
		}
		st.Paired++
		okA, err := withinThreshold(a, opt.Threshold)
		if err != nil {
			return st, err
		}
		okB, err := withinThreshold(b, opt.Threshold)
		if err != nil {
			return st, err
		}
		// Pair-atomic: either both reads are written or neither is.
		if okA && okB {
			if err := write(a); err != nil {
				return st, err
			}
			if err := write(b); err != nil {
				return st, err
			}
		}
	}

	if opt.CheckPairs && st.Paired > 0 && float64(st.Unpaired)/float64(st.Paired) > opt.WarnRatio {
		warnf("very many unpaired reads found (%d unpaired / %d paired); maybe the input wasn't sorted by read name?",
			st.Unpaired, st.Paired)
	}
	return st, nil
}

func withinThreshold(a Alignment, pct float64) (bool, error) {
	nm, err := a.EditDistance()
	if err != nil {
		return false, err
	}
	return float64(nm) <= float64(a.Length())*pct/100, nil
}
