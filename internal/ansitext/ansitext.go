// Package ansitext incrementally decodes ANSI-styled process output into a
// clean display string plus tagged highlight ranges.
//
// The decoder recognizes SGR (color/weight/decoration) sequences and the
// DEC Special Character Set line-drawing shift; everything else is stripped.
// Two secondary passes over the decoded text detect compiler-style file
// paths and error-message markers. Range positions are byte offsets into
// the decoded string.
package ansitext

import (
	"strings"

	"runpad/internal/highlight"
)

// MaxRawBytes caps retained raw input per stream. Input past the cap is
// dropped and the accumulator marked truncated, keeping re-decodes and the
// rendered buffer bounded no matter how much a process prints.
const MaxRawBytes = 128 * 1024

// Text accumulates one stream's raw output and keeps a decoded view of it.
// Append re-decodes from the full retained raw input rather than patching
// incrementally: style ranges depend on open/close state that can span
// arbitrary distances, and a fresh scan also makes escape sequences split
// across appends a non-issue. The raw cap keeps the quadratic cost bounded.
type Text struct {
	raw       strings.Builder
	truncated bool

	decoded string
	ranges  []highlight.Range
}

// Append adds a chunk of raw process output and recomputes the decoded view.
func (t *Text) Append(chunk string) {
	if chunk == "" {
		return
	}
	room := MaxRawBytes - t.raw.Len()
	if room <= 0 {
		t.truncated = true
		return
	}
	if len(chunk) > room {
		chunk = chunk[:room]
		t.truncated = true
	}
	t.raw.WriteString(chunk)
	t.decoded, t.ranges = Decode(t.raw.String())
}

// String returns the decoded display text.
func (t *Text) String() string { return t.decoded }

// Ranges returns the highlight ranges describing String().
func (t *Text) Ranges() []highlight.Range { return t.ranges }

// Truncated reports whether raw input was dropped at the retention cap.
func (t *Text) Truncated() bool { return t.truncated }

// Result returns the decoded text and ranges as one view.
func (t *Text) Result() highlight.Text {
	return highlight.Text{Text: t.decoded, Ranges: t.ranges}
}
