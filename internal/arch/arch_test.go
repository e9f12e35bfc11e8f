// ./internal/arch/arch_test.go
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

// Layering, lowest first: core (kmer, stats, seqio) → pipeline → writers,
// metrics, config → app → cli → cmd. The engine itself does no I/O.
var bans = map[string][]string{
	"readstats-core/kmer": {
		"readstats-core/stats", "readstats-core/seqio", "readstats/",
	},
	"readstats-core/stats": {
		"readstats-core/seqio", "readstats/",
	},
	"readstats-core/seqio": {
		"readstats-core/stats", "readstats-core/kmer", "readstats/",
	},
	"readstats/internal/pipeline": {
		"readstats/internal/app", "readstats/internal/cli",
		"readstats/internal/writers", "readstats/internal/metrics",
		"readstats/cmd/",
	},
	"readstats/internal/writers": {
		"readstats/internal/app", "readstats/internal/cli",
		"readstats/internal/pipeline", "readstats/internal/metrics",
		"readstats/cmd/",
	},
	"readstats/internal/metrics": {
		"readstats/internal/app", "readstats/internal/cli",
		"readstats/internal/pipeline", "readstats/internal/writers",
		"readstats/cmd/",
	},
	"readstats/internal/config": {
		"readstats/internal/app", "readstats/internal/cli",
		"readstats/internal/pipeline", "readstats/cmd/",
	},
	"readstats/internal/app": {
		"readstats/internal/cli", "readstats/cmd/",
	},
	"readstats/pkg/api": {
		"readstats/internal/", "readstats-core/",
	},
}

func isLocal(path string) bool {
	return strings.HasPrefix(path, "readstats/") || strings.HasPrefix(path, "readstats-core/")
}

func listPackages(t *testing.T, dir string) []pkg {
	t.Helper()
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list in %s: %v", dir, err)
	}

	var pkgs []pkg
	dec := json.NewDecoder(&out)
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		pkgs = append(pkgs, p)
	}
	return pkgs
}

func TestImportBoundaries(t *testing.T) {
	// Both modules: the CLI at the repo root and the core it replaces in.
	pkgs := append(listPackages(t, "../.."), listPackages(t, "../../core")...)

	var violations []string
	for _, p := range pkgs {
		if !isLocal(p.ImportPath) {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !isLocal(dep) {
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
