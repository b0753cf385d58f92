// Package highlight defines tagged spans over rendered text views.
// Positions are flat byte offsets into the string a range describes.
package highlight

// Tag classifies a highlighted span.
type Tag string

const (
	TagKeyword     Tag = "keyword"
	TagPunctuation Tag = "punctuation"
	TagStatusOK    Tag = "status_ok"
	TagStatusErr   Tag = "status_err"
	TagTime        Tag = "time"
	TagPath        Tag = "path"
	TagError       Tag = "error"

	TagANSIDim       Tag = "ansi_dim"
	TagANSIBold      Tag = "ansi_bold"
	TagANSIUnderline Tag = "ansi_underline"
	TagANSIRed       Tag = "ansi_red"
	TagANSIGreen     Tag = "ansi_green"
	TagANSIYellow    Tag = "ansi_yellow"
	TagANSIBlue      Tag = "ansi_blue"
	TagANSIMagenta   Tag = "ansi_magenta"
	TagANSICyan      Tag = "ansi_cyan"
	TagANSIWhite     Tag = "ansi_white"
)

// Range is a tagged span [Start, End) over a text view.
// File/Line/Column are set only when Tag is TagPath; Line and Column are
// 1-based as written in the output (consumers subtract one to navigate).
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Tag   Tag `json:"tag"`

	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// Text pairs a rendered string with the ranges that describe it.
type Text struct {
	Text   string  `json:"text"`
	Ranges []Range `json:"ranges"`
}
