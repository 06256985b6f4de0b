// Package diff renders differences between widget configuration outputs:
// stored documents against their sanitized form, and variable sets across
// document revisions.
package diff

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// GenerateUnifiedDiff renders a unified diff between two documents under the
// given labels. Identical documents produce an empty string. Output beyond
// 10,000 lines is cut off with a truncation marker.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	var buf bytes.Buffer
	stamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(&buf, "--- %s\t%s\n", expectedLabel, stamp)
	fmt.Fprintf(&buf, "+++ %s\t%s\n", actualLabel, stamp)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", lineCount(string(expected)), lineCount(string(actual)))

	for _, d := range lineDiffs(expected, actual) {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}

	out := buf.String()
	if lines := strings.Split(out, "\n"); len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return out
}

// CountChanges reports how many lines differ between two renderings. A
// replaced line counts twice, once removed and once added.
func CountChanges(expected, actual []byte) int {
	if bytes.Equal(expected, actual) {
		return 0
	}

	changes := 0
	for _, d := range lineDiffs(expected, actual) {
		if d.Type == diffmatchpatch.DiffEqual {
			continue
		}
		changes += lineCount(d.Text)
	}
	return changes
}

// lineDiffs compares two documents in go-diff's line mode, so every edit
// lands on a line boundary instead of splitting mid-line.
func lineDiffs(expected, actual []byte) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	c1, c2, lines := dmp.DiffLinesToChars(string(expected), string(actual))
	diffs := dmp.DiffMain(c1, c2, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func lineCount(text string) int {
	if text == "" {
		return 0
	}
	return len(splitLines(text))
}
