// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"minspace/internal/kmer"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "-f", "ref.fa", "-o", "out.min")
	if o.Fasta != "ref.fa" || o.Output != "out.min" || o.Window != 31 || o.Length != 10 {
		t.Errorf("unexpected defaults %+v", o)
	}
}

func TestLongFlagsAndAliases(t *testing.T) {
	o := mustParse(t, "--concat", "x.bin", "--output", "x.min", "-w", "5", "--length", "12", "-q", "--info")
	if o.Concat != "x.bin" || o.Window != 5 || o.Length != 12 || !o.Quiet || !o.Info {
		t.Errorf("bad parse %+v", o)
	}
}

func TestErrorMutualExclusion(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-f", "a.fa", "-c", "a.bin", "-o", "x"})
	if err == nil {
		t.Fatalf("expected mutual-exclusion error")
	}
}

func TestErrorNoInput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-o", "x"}); err == nil {
		t.Fatalf("expected error with no input")
	}
}

func TestErrorNoOutput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-f", "a.fa"}); err == nil {
		t.Fatalf("expected error when output missing")
	}
}

func TestErrorRanges(t *testing.T) {
	for _, args := range [][]string{
		{"-f", "a.fa", "-o", "x", "-w", "0"},
		{"-f", "a.fa", "-o", "x", "-l", "0"},
		{"-f", "a.fa", "-o", "x", "-l", "33"},
	} {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Fatalf("expected range error for %v", args)
		}
	}
	// the sequence-mode bound itself is accepted
	mustParse(t, "-f", "a.fa", "-o", "x", "-l", strconv.Itoa(kmer.MaxNucleotideLength))
	// opaque windows may exceed 32 bytes
	mustParse(t, "-c", "a.bin", "-o", "x", "-l", "64")
}

func TestPositionalRejected(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-f", "a.fa", "-o", "x", "extra"}); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestHelpAndVersion(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("version: %+v %v", o, err)
	}
}

func TestConfigDefaultsAndPrecedence(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "m.toml")
	if err := os.WriteFile(conf, []byte("window = 7\nlength = 4\ninfo = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	o := mustParse(t, "-f", "a.fa", "-o", "x", "--config", conf)
	if o.Window != 7 || o.Length != 4 || !o.Info {
		t.Fatalf("config not applied: %+v", o)
	}
	o = mustParse(t, "-f", "a.fa", "-o", "x", "--config", conf, "-w", "9", "--length", "5")
	if o.Window != 9 || o.Length != 5 {
		t.Fatalf("explicit flags must win: %+v", o)
	}
}

func TestConfigInvalidValueStillValidated(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "m.toml")
	if err := os.WriteFile(conf, []byte("window = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseArgs(newFS(), []string{"-f", "a.fa", "-o", "x", "--config", conf}); err == nil {
		t.Fatal("expected validation error from config value")
	}
}
