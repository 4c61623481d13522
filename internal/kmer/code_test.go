package kmer

import (
	"bytes"
	"testing"
)

func TestCodeTable_Snapshot(t *testing.T) {
	for b, want := range map[byte]uint64{'A': 0, 'C': 1, 'G': 2, 'T': 3, 'a': 0, 'c': 1, 'g': 2, 't': 3, 'U': 3, 'u': 3} {
		got, ok := Code(b)
		if !ok || got != want {
			t.Fatalf("Code(%q) = %d,%v want %d,true", b, got, ok, want)
		}
	}
	for _, b := range []byte("NnRYSWKMBDHV-.*\n0") {
		if _, ok := Code(b); ok {
			t.Fatalf("Code(%q) must be ambiguous", b)
		}
	}
}

func TestRevCompSeqSimple(t *testing.T) {
	got := RevCompSeq([]byte("AGTC"))
	if want := []byte("GACT"); !bytes.Equal(got, want) {
		t.Errorf("RevCompSeq(AGTC) = %s, want %s", got, want)
	}
	if got := RevCompSeq([]byte("acgNu")); !bytes.Equal(got, []byte("ANCGT")) {
		t.Errorf("RevCompSeq(acgNu) = %s, want ANCGT", got)
	}
}

func TestRevCompSeqEmpty(t *testing.T) {
	if RevCompSeq(nil) != nil {
		t.Errorf("RevCompSeq(nil) should return nil")
	}
}

func TestRevCompCodeMatchesSeq(t *testing.T) {
	for _, s := range []string{"A", "AC", "ACGT", "GATTACA", "TTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTT"} {
		fwd, ok := Encode([]byte(s))
		if !ok {
			t.Fatalf("Encode(%s) failed", s)
		}
		want, _ := Encode(RevCompSeq([]byte(s)))
		if got := RevComp(fwd, len(s)); got != want {
			t.Errorf("RevComp(%s) = %d, want %d", s, got, want)
		}
	}
}

func TestEncodeRejectsAmbiguous(t *testing.T) {
	if _, ok := Encode([]byte("ACNT")); ok {
		t.Fatal("Encode must reject N")
	}
}

func TestCanonicalPicksSmaller(t *testing.T) {
	if Canonical(11, 1) != 1 || Canonical(1, 11) != 1 || Canonical(6, 6) != 6 {
		t.Fatal("Canonical must return the numeric minimum")
	}
}
