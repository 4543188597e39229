// core/reads/select.go
package reads

// Format tags recognized by New.
const (
	FormatLine  = "line"
	FormatTSV   = "tsv"
	FormatSAM   = "sam"
	FormatFasta = "fasta"
	FormatFastq = "fastq"
)

// Formats lists the recognized format tags.
var Formats = []string{FormatLine, FormatTSV, FormatSAM, FormatFasta, FormatFastq}

// Config aggregates per-format configuration for New. QualFormat applies to
// quality-bearing formats; the column indices apply to tsv only; Warnf
// receives non-fatal fastq diagnostics.
type Config struct {
	QualFormat string
	NameCol    int
	SeqCol     int
	QualCol    int
	Warnf      func(format string, args ...any)
}

// New constructs the parser for a format tag. Unknown tags fail with an
// UnsupportedFormatError.
func New(format string, src Source, cfg Config) (Parser, error) {
	switch format {
	case FormatLine, "lines":
		return NewLineReader(src)
	case FormatTSV:
		tc := TSVConfig{
			QualFormat: cfg.QualFormat,
			NameCol:    cfg.NameCol,
			SeqCol:     cfg.SeqCol,
			QualCol:    cfg.QualCol,
		}
		if tc.NameCol == 0 && tc.SeqCol == 0 && tc.QualCol == 0 {
			tc = DefaultTSVConfig()
			tc.QualFormat = cfg.QualFormat
		}
		return NewTSVReader(src, tc)
	case FormatSAM:
		return NewSAMReader(src, cfg.QualFormat)
	case FormatFasta:
		return NewFastaReader(src)
	case FormatFastq:
		return NewFastqReader(src, FastqConfig{QualFormat: cfg.QualFormat, Warnf: cfg.Warnf})
	default:
		return nil, &UnsupportedFormatError{Format: format}
	}
}
