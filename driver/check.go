package driver

import (
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/logger"
)

// CheckResult holds the result of an up-to-date check
type CheckResult struct {
	UpToDate bool
	Checked  int
	Stale    []Stale
}

// Stale is one destination whose content differs from a fresh render
type Stale struct {
	ID      string
	Path    string
	Missing bool

	// Diff lists removed (-) and added (+) lines, empty when Missing
	Diff string
}

// Check renders the families ids (all registered families when empty) and
// compares each with its destination on disk. Nothing is written.
func (d *Driver) Check(ids ...string) (*CheckResult, error) {
	if len(ids) == 0 {
		ids = d.registry.IDs()
	}

	logFamily := logger.ShouldOutput(d.verbosity, logger.OutputFamilies)
	result := &CheckResult{}
	for _, id := range ids {
		out, err := d.Render(id)
		if err != nil {
			return nil, err
		}
		result.Checked++

		existing, err := os.ReadFile(out.Path)
		switch {
		case os.IsNotExist(err):
			result.Stale = append(result.Stale, Stale{ID: id, Path: out.Path, Missing: true})
			if logFamily {
				d.log.Infow("Destination missing", logger.FieldFamily, id, logger.FieldPath, out.Path, logger.FieldStatus, "missing")
			}
			continue
		case err != nil:
			return nil, errors.Wrapf(err, "failed to read %s", out.Path)
		}

		if string(existing) == string(out.Content) {
			if logFamily {
				d.log.Debugw("Destination up to date", logger.FieldFamily, id, logger.FieldPath, out.Path)
			}
			continue
		}
		result.Stale = append(result.Stale, Stale{
			ID:   id,
			Path: out.Path,
			Diff: LineDiff(string(existing), string(out.Content)),
		})
		if logFamily {
			d.log.Infow("Destination stale", logger.FieldFamily, id, logger.FieldPath, out.Path, logger.FieldStatus, "stale")
		}
	}

	result.UpToDate = len(result.Stale) == 0
	return result, nil
}

// LineDiff returns the lines removed from before ("-") and added in after ("+")
func LineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, diff := range diffs {
		var prefix string
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
