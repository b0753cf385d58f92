package ansitext

import (
	"sort"
	"strings"

	"runpad/internal/highlight"
)

// lineDrawing maps DEC Special Character Set bytes to box-drawing glyphs.
// Active between ESC ( 0 and ESC ( B; other bytes pass through unchanged.
var lineDrawing = map[byte]rune{
	'q': '─',
	'x': '│',
	'l': '┌',
	'k': '┐',
	'm': '└',
	'j': '┘',
	't': '├',
	'u': '┤',
	'v': '┴',
	'w': '┬',
	'n': '┼',
}

// sgrColor maps SGR foreground color codes to their highlight tags.
// 30 (black) and 39 (default) participate in the color group but carry no
// tag of their own; they only close whatever color is open.
var sgrColor = map[int]highlight.Tag{
	31: highlight.TagANSIRed,
	32: highlight.TagANSIGreen,
	33: highlight.TagANSIYellow,
	34: highlight.TagANSIBlue,
	35: highlight.TagANSIMagenta,
	36: highlight.TagANSICyan,
	37: highlight.TagANSIWhite,
}

// decoder tracks open style spans while scanning raw input. Starts are byte
// offsets into the output (already decoded) text.
type decoder struct {
	out    strings.Builder
	ranges []highlight.Range

	drawing bool

	boldStart      int
	dimStart       int
	underlineStart int
	colorStart     int
	colorTag       highlight.Tag

	boldOpen      bool
	dimOpen       bool
	underlineOpen bool
	colorOpen     bool
}

// Decode scans raw left to right, stripping SGR and charset escapes, and
// returns the clean display string plus style, path and error ranges sorted
// by start offset. It always decodes from the full raw input; incremental
// callers re-run it per append (see Text).
func Decode(raw string) (string, []highlight.Range) {
	d := &decoder{}
	i := 0
	for i < len(raw) {
		b := raw[i]
		if b != 0x1b {
			d.writeByte(b)
			i++
			continue
		}
		if i+1 >= len(raw) {
			break // incomplete escape at end of input; dropped
		}
		switch raw[i+1] {
		case '[':
			i = d.consumeCSI(raw, i+2)
		case '(':
			if i+2 >= len(raw) {
				return d.finish()
			}
			switch raw[i+2] {
			case '0':
				d.drawing = true
			case 'B':
				d.drawing = false
			}
			i += 3
		default:
			i += 2 // unrecognized two-byte escape, stripped
		}
	}
	return d.finish()
}

func (d *decoder) writeByte(b byte) {
	if d.drawing {
		if r, ok := lineDrawing[b]; ok {
			d.out.WriteRune(r)
			return
		}
	}
	d.out.WriteByte(b)
}

// consumeCSI scans a CSI sequence starting just past "ESC [". Only SGR
// (final byte 'm') affects style state; every other CSI sequence is
// stripped from the output.
func (d *decoder) consumeCSI(raw string, i int) int {
	start := i
	for i < len(raw) {
		b := raw[i]
		if b >= 0x40 && b <= 0x7e {
			if b == 'm' {
				d.applySGR(raw[start:i])
			}
			return i + 1
		}
		i++
	}
	return i // incomplete sequence at end of input
}

func (d *decoder) applySGR(params string) {
	pos := d.out.Len()
	for _, p := range strings.Split(params, ";") {
		code := 0
		for j := 0; j < len(p); j++ {
			if p[j] < '0' || p[j] > '9' {
				code = -1
				break
			}
			code = code*10 + int(p[j]-'0')
		}
		switch {
		case code == 0:
			d.closeAll(pos)
		case code == 1:
			if !d.boldOpen {
				d.boldOpen, d.boldStart = true, pos
			}
		case code == 2:
			if !d.dimOpen {
				d.dimOpen, d.dimStart = true, pos
			}
		case code == 4:
			if !d.underlineOpen {
				d.underlineOpen, d.underlineStart = true, pos
			}
		case code == 22:
			d.closeBoldDim(pos)
		case code == 24:
			d.closeUnderline(pos)
		case code >= 30 && code <= 39:
			// Only one foreground color is open at a time.
			d.closeColor(pos)
			if tag, ok := sgrColor[code]; ok {
				d.colorOpen, d.colorStart, d.colorTag = true, pos, tag
			}
		}
		// Unrecognized codes are ignored.
	}
}

func (d *decoder) emit(start, end int, tag highlight.Tag) {
	if end > start {
		d.ranges = append(d.ranges, highlight.Range{Start: start, End: end, Tag: tag})
	}
}

func (d *decoder) closeBoldDim(pos int) {
	if d.boldOpen {
		d.emit(d.boldStart, pos, highlight.TagANSIBold)
		d.boldOpen = false
	}
	if d.dimOpen {
		d.emit(d.dimStart, pos, highlight.TagANSIDim)
		d.dimOpen = false
	}
}

func (d *decoder) closeUnderline(pos int) {
	if d.underlineOpen {
		d.emit(d.underlineStart, pos, highlight.TagANSIUnderline)
		d.underlineOpen = false
	}
}

func (d *decoder) closeColor(pos int) {
	if d.colorOpen {
		d.emit(d.colorStart, pos, d.colorTag)
		d.colorOpen = false
	}
}

func (d *decoder) closeAll(pos int) {
	d.closeBoldDim(pos)
	d.closeUnderline(pos)
	d.closeColor(pos)
}

// finish closes any styles still open at end of input (unterminated
// sequences are common in real tool output and must still highlight to the
// end of captured text), runs the secondary detection passes, and sorts.
func (d *decoder) finish() (string, []highlight.Range) {
	text := d.out.String()
	d.closeAll(len(text))
	ranges := append(d.ranges, detectPaths(text)...)
	ranges = append(ranges, detectErrors(text)...)
	sort.SliceStable(ranges, func(a, b int) bool { return ranges[a].Start < ranges[b].Start })
	return text, ranges
}
