package ansitext

import (
	"regexp"
	"strconv"

	"runpad/internal/highlight"
)

// pathRe matches compiler-style file locations: a non-whitespace,
// non-colon run with an extension, then 1-based line and column.
var pathRe = regexp.MustCompile(`([^\s:]+\.[A-Za-z0-9_]+):(\d+):(\d+)`)

// errRe matches "error:" prefixes case-insensitively, with an optional gap
// before the colon ("error :" shows up in some toolchains).
var errRe = regexp.MustCompile(`(?i)\berror\s*:`)

// detectPaths finds file-path ranges in decoded text. Line and column are
// kept 1-based as written; consumers convert for navigation.
func detectPaths(text string) []highlight.Range {
	var ranges []highlight.Range
	for _, m := range pathRe.FindAllStringSubmatchIndex(text, -1) {
		line, _ := strconv.Atoi(text[m[4]:m[5]])
		col, _ := strconv.Atoi(text[m[6]:m[7]])
		ranges = append(ranges, highlight.Range{
			Start:  m[0],
			End:    m[1],
			Tag:    highlight.TagPath,
			File:   text[m[2]:m[3]],
			Line:   line,
			Column: col,
		})
	}
	return ranges
}

// detectErrors finds error-message markers in decoded text.
func detectErrors(text string) []highlight.Range {
	var ranges []highlight.Range
	for _, m := range errRe.FindAllStringIndex(text, -1) {
		ranges = append(ranges, highlight.Range{Start: m[0], End: m[1], Tag: highlight.TagError})
	}
	return ranges
}
