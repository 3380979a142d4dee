package lexertest

import "github.com/sergi/go-diff/diffmatchpatch"

// unifiedDiff renders a compact diff between the expected and reconstructed
// text for a failing round-trip check, so a rapid shrink failure prints
// something readable instead of two long raw strings.
func unifiedDiff(want, got string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	return dmp.DiffPrettyText(diffs)
}
