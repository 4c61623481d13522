// internal/cliutil/args.go
package cliutil

import (
	"flag"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// isBoolFlag reports whether the named flag takes no value.
func isBoolFlag(fs *flag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}

// SplitFlagsAndPositionals lets flags and file arguments interleave.
// "-" is a positional (STDIN) and everything after "--" is positional.
// Unknown flags are passed through so fs.Parse can reject them.
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(posArgs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			posArgs = append(posArgs, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if !isBoolFlag(fs, name) && fs.Lookup(name) != nil && i+1 < len(argv) {
			i++
			flagArgs = append(flagArgs, argv[i])
		}
	}
	return flagArgs, posArgs
}

// ExpandPositionals expands glob patterns and drops repeated paths,
// keeping first-seen order. A pattern matching nothing is an error.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	add := func(p string) {
		if p != "-" && seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
	}
	for _, a := range posArgs {
		if a == "-" || !strings.ContainsAny(a, "*?[") {
			add(a)
			continue
		}
		matches, err := filepath.Glob(a)
		if err != nil {
			return nil, errors.Wrapf(err, "bad glob %q", a)
		}
		if len(matches) == 0 {
			return nil, errors.Errorf("no input matched %q", a)
		}
		for _, m := range matches {
			add(m)
		}
	}
	return out, nil
}
