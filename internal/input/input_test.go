package input

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

const twoRecords = `>seq1 first record
ACGT
acgt
>seq2
NNNN
`

func write(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func gz(t *testing.T, data string) []byte {
	t.Helper()
	var b bytes.Buffer
	gw := gzip.NewWriter(&b)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	return b.Bytes()
}

func TestFirstRecordKeepsOnlyFirst(t *testing.T) {
	fn := write(t, "two.fa", []byte(twoRecords))
	rec, more, err := FirstRecord(fn)
	if err != nil {
		t.Fatalf("FirstRecord: %v", err)
	}
	if rec.ID != "seq1" || string(rec.Seq) != "ACGTacgt" {
		t.Fatalf("got %q %q", rec.ID, rec.Seq)
	}
	if !more {
		t.Fatal("expected more=true for a two-record file")
	}
}

func TestFirstRecordSingle(t *testing.T) {
	fn := write(t, "one.fa", []byte(">only\nACGTN\nAC\n"))
	rec, more, err := FirstRecord(fn)
	if err != nil || more || string(rec.Seq) != "ACGTNAC" {
		t.Fatalf("rec=%+v more=%v err=%v", rec, more, err)
	}
}

func TestFirstRecordGzip(t *testing.T) {
	fn := write(t, "two.fa.gz", gz(t, twoRecords))
	rec, more, err := FirstRecord(fn)
	if err != nil {
		t.Fatalf("FirstRecord gz: %v", err)
	}
	if rec.ID != "seq1" || !more {
		t.Fatalf("gzip parse failed: %+v more=%v", rec, more)
	}
}

func TestFirstRecordEmptyFile(t *testing.T) {
	fn := write(t, "empty.fa", nil)
	rec, more, err := FirstRecord(fn)
	if err != nil || more || len(rec.Seq) != 0 {
		t.Fatalf("empty file: rec=%+v more=%v err=%v", rec, more, err)
	}
}

func TestFirstRecordMissingFile(t *testing.T) {
	if _, _, err := FirstRecord(filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFirstRecordNotFasta(t *testing.T) {
	fn := write(t, "junk.txt", []byte("this is not a sequence file\n"))
	if _, _, err := FirstRecord(fn); err == nil {
		t.Fatal("expected error for non-FASTA/Q input")
	}
}

func TestReadConcat(t *testing.T) {
	raw := []byte("hello\x00world\n\xff")
	got, err := ReadConcat(write(t, "raw.bin", raw))
	if err != nil || !bytes.Equal(got, raw) {
		t.Fatalf("plain: got %q err=%v", got, err)
	}
	got, err = ReadConcat(write(t, "raw.bin.gz", gz(t, string(raw))))
	if err != nil || !bytes.Equal(got, raw) {
		t.Fatalf("gzip: got %q err=%v", got, err)
	}
}

func TestReadConcatEmpty(t *testing.T) {
	got, err := ReadConcat(write(t, "empty.bin", nil))
	if err != nil || len(got) != 0 {
		t.Fatalf("empty: got %q err=%v", got, err)
	}
}

func TestReadConcatMissing(t *testing.T) {
	if _, err := ReadConcat(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
