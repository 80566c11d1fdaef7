package formgen

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/teranos/formgen/errors"
)

// FileDiff is one artifact whose golden copy differs
type FileDiff struct {
	Name string
	Diff string // unified diff, golden -> generated
}

// CheckResult holds the result of comparing a pass against golden files
type CheckResult struct {
	UpToDate bool
	Missing  []string   // artifacts with no golden file
	Differs  []FileDiff // artifacts whose golden file differs byte-for-byte
	Stale    []string   // golden "*.g.<ext>" files the pass no longer produces
}

// Check compares result against the golden files in dir. Comparison is
// byte-exact: a line-ending change is a difference.
func Check(result *Result, dir, ext string) (*CheckResult, error) {
	check := &CheckResult{}
	produced := make(map[string]bool, len(result.Artifacts))

	for _, a := range result.Artifacts {
		produced[a.Name] = true

		golden, err := os.ReadFile(filepath.Join(dir, a.Name))
		if os.IsNotExist(err) {
			check.Missing = append(check.Missing, a.Name)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read golden %s", a.Name)
		}
		if string(golden) == a.Text {
			continue
		}

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(golden)),
			B:        difflib.SplitLines(a.Text),
			FromFile: filepath.ToSlash(filepath.Join(dir, a.Name)),
			ToFile:   "generated/" + a.Name,
			Context:  3,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to diff %s", a.Name)
		}
		if diff == "" {
			diff = "contents differ\n"
		}
		check.Differs = append(check.Differs, FileDiff{Name: a.Name, Diff: diff})
	}

	existing, err := filepath.Glob(filepath.Join(dir, "*.g."+ext))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list golden files")
	}
	for _, path := range existing {
		if name := filepath.Base(path); !produced[name] {
			check.Stale = append(check.Stale, name)
		}
	}
	sort.Strings(check.Stale)

	check.UpToDate = len(check.Missing) == 0 && len(check.Differs) == 0 && len(check.Stale) == 0
	return check, nil
}
