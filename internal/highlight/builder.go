package highlight

import "strings"

// Builder assembles a string and its ranges together, so range offsets can
// never drift from the text they describe.
type Builder struct {
	sb     strings.Builder
	ranges []Range
}

// Append adds plain, untagged text.
func (b *Builder) Append(s string) {
	b.sb.WriteString(s)
}

// AppendTagged adds text covered by a single range with the given tag.
func (b *Builder) AppendTagged(s string, tag Tag) {
	start := b.sb.Len()
	b.sb.WriteString(s)
	b.ranges = append(b.ranges, Range{Start: start, End: b.sb.Len(), Tag: tag})
}

// Result returns the assembled text and its ranges.
func (b *Builder) Result() Text {
	return Text{Text: b.sb.String(), Ranges: b.ranges}
}
