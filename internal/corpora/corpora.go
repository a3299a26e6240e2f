// Package corpora runs table-driven tests where the table lives on disk:
// a directory of fixture files, each compared against one or more golden
// output files. Adapted from the teacher's internal/corpora/corpora.go,
// reworked to glob fixtures with doublestar instead of a manual
// filepath.Walk, and to diff mismatches with go-difflib.
package corpora

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"
)

// Corpus describes a fixture directory and how to test each file in it.
type Corpus struct {
	// Root is the directory to search, relative to the test binary's
	// working directory (ordinarily the package directory under `go test`).
	Root string
	// Refresh names an environment variable; when set to a doublestar glob
	// matching a fixture's relative path, that fixture's golden files are
	// (re)written from the test's actual output instead of compared.
	Refresh string
	// Extension is the fixture file extension, without a dot, e.g. "proto".
	Extension string
	// Outputs are the golden outputs to check for each fixture.
	Outputs []Output
	// Test runs one fixture, returning one result string per Outputs entry.
	Test func(t *testing.T, relPath, source string) []string
}

// Output names one golden output a Corpus checks per fixture.
type Output struct {
	// Extension is appended to the fixture's own filename, e.g. a fixture
	// "foo.proto" with Extension "ast" is checked against "foo.proto.ast".
	Extension string
	// Compare compares got against want, returning "" on a match or a
	// human-readable diff otherwise. Nil means byte-for-byte comparison.
	Compare Compare
}

// Compare reports a diff between an actual and expected string, or ""
// if they match.
type Compare func(got, want string) string

// Run executes every fixture found under c.Root against c.Test, checking
// or refreshing each of c.Outputs.
func (c Corpus) Run(t *testing.T) {
	pattern := fmt.Sprintf("**/*.%s", c.Extension)
	matches, err := doublestar.Glob(os.DirFS(c.Root), pattern)
	if err != nil {
		t.Fatalf("corpora: invalid glob %q: %v", pattern, err)
	}
	if len(matches) == 0 {
		t.Fatalf("corpora: no *.%s fixtures found under %q", c.Extension, c.Root)
	}

	var refreshGlob string
	if c.Refresh != "" {
		refreshGlob = os.Getenv(c.Refresh)
	}

	for _, rel := range matches {
		rel := rel
		t.Run(rel, func(t *testing.T) {
			full := filepath.Join(c.Root, rel)
			src, err := os.ReadFile(full)
			if err != nil {
				t.Fatalf("corpora: reading %q: %v", full, err)
			}

			results := c.Test(t, rel, string(src))

			shouldRefresh := false
			if refreshGlob != "" {
				shouldRefresh, _ = doublestar.Match(refreshGlob, rel)
			}

			for i, output := range c.Outputs {
				goldenPath := full + "." + output.Extension
				if shouldRefresh {
					if err := os.WriteFile(goldenPath, []byte(results[i]), 0o644); err != nil {
						t.Fatalf("corpora: writing golden %q: %v", goldenPath, err)
					}
					continue
				}

				want, err := os.ReadFile(goldenPath)
				if err != nil && !os.IsNotExist(err) {
					t.Fatalf("corpora: reading golden %q: %v", goldenPath, err)
				}

				cmp := output.Compare
				if cmp == nil {
					cmp = defaultCompare
				}
				if diff := cmp(results[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", goldenPath, diff)
				}
			}
		})
	}
}

// ReadManifest decodes the YAML file at path into out. It exists for
// corpora consumers that need a structured expectation alongside a
// fixture (e.g. an expected error count) rather than a plain golden-text
// Output.
func ReadManifest(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func defaultCompare(got, want string) string {
	if got == want {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}
