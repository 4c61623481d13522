// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.." // module root
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	app := []string{
		"minspace/internal/app", "minspace/internal/dumpapp", "minspace/internal/appshell",
		"minspace/internal/cli", "minspace/cmd/",
	}
	bans := map[string][]string{
		// core algorithms stay free of I/O and orchestration
		"minspace/internal/kmer": append([]string{
			"minspace/internal/minimizer", "minspace/internal/minspace", "minspace/internal/input",
			"minspace/internal/pipeline", "minspace/internal/writers",
		}, app...),
		"minspace/internal/minimizer": append([]string{
			"minspace/internal/minspace", "minspace/internal/input",
			"minspace/internal/pipeline", "minspace/internal/writers",
		}, app...),
		"minspace/internal/minspace": append([]string{
			"minspace/internal/kmer", "minspace/internal/minimizer",
			"minspace/internal/pipeline", "minspace/internal/writers",
		}, app...),
		"minspace/internal/input":    append([]string{"minspace/internal/pipeline"}, app...),
		"minspace/internal/pipeline": append([]string{"minspace/internal/writers"}, app...),
		"minspace/internal/writers":  append([]string{"minspace/internal/pipeline"}, app...),
		"minspace/pkg/":              append([]string{"minspace/internal/"}, app...),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "minspace/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "minspace/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
