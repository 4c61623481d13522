// internal/input/fasta.go
package input

import (
	"io"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

// Record is one framed sequence.
type Record struct {
	ID  string
	Seq []byte
}

// FirstRecord reads the first FASTA/FASTQ record of path. more reports
// whether anything follows it; what to do about that is up to the caller.
// A file with no records yields an empty Record.
func FirstRecord(path string) (rec Record, more bool, err error) {
	// Unlimit keeps every byte as-is; ambiguity is handled by the encoder.
	r, err := fastx.NewReader(seq.Unlimit, path, "")
	if err != nil {
		if errors.Is(err, xopen.ErrNoContent) {
			return Record{}, false, nil
		}
		return Record{}, false, errors.Wrap(err, path)
	}
	defer r.Close()

	first, err := r.Read()
	if err == io.EOF {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, errors.Wrapf(err, "%s: read first record", path)
	}
	// the reader reuses its buffers on the next Read
	rec = Record{
		ID:  string(first.ID),
		Seq: append([]byte(nil), first.Seq.Seq...),
	}

	// Anything but a clean EOF means another record (possibly broken) follows;
	// it is never parsed further.
	_, err = r.Read()
	return rec, err != io.EOF, nil
}
