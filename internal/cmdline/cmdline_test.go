package cmdline

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenizePartition(t *testing.T) {
	cases := []string{
		"",
		"git status",
		"  echo   hi  ",
		`echo "hello world" test`,
		`echo "unterminated`,
		`a"b"c`,
		"\tgo test ./...\t",
	}
	for _, cmd := range cases {
		toks := Tokenize(cmd)
		pos := 0
		for i, tok := range toks {
			if tok.Start != pos {
				t.Fatalf("%q: token %d starts at %d, want %d", cmd, i, tok.Start, pos)
			}
			if tok.End <= tok.Start {
				t.Fatalf("%q: token %d is empty", cmd, i)
			}
			pos = tok.End
		}
		if pos != len(cmd) {
			t.Fatalf("%q: tokens cover %d bytes, want %d", cmd, pos, len(cmd))
		}
	}
}

func TestParseTokens(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"git status", []string{"git", "status"}},
		{"  git   status ", []string{"git", "status"}},
		{`echo "hello world" test`, []string{"echo", "hello world", "test"}},
		{`echo ""`, []string{"echo", ""}},
		{`echo "unterminated arg`, []string{"echo", "unterminated arg"}},
		{"", nil},
		{"   ", nil},
	}
	for _, c := range cases {
		got := Parse(c.in)
		if !reflect.DeepEqual(got.Tokens, c.want) {
			t.Errorf("Parse(%q).Tokens = %v, want %v", c.in, got.Tokens, c.want)
		}
		if got.CursorToken != -1 || got.CursorOffset != -1 {
			t.Errorf("Parse(%q) cursor = (%d,%d), want (-1,-1)", c.in, got.CursorToken, got.CursorOffset)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	// Without quotes, joining tokens normalizes whitespace but preserves
	// order and values.
	in := "  go   test\t./...  "
	got := Parse(in)
	if joined := strings.Join(got.Tokens, " "); joined != "go test ./..." {
		t.Fatalf("joined = %q", joined)
	}
}

func TestCursorMappingTotalCoverage(t *testing.T) {
	// For every valid cursor position either both fields are set or neither.
	cases := []string{
		"git status",
		`echo "hello world" test`,
		"  spaced   out  ",
		`echo "unterminated`,
		"",
	}
	for _, cmd := range cases {
		for cur := 0; cur <= len(cmd); cur++ {
			got := ParseAt(cmd, cur)
			defined := got.CursorToken >= 0
			if defined != (got.CursorOffset >= 0) {
				t.Fatalf("%q cursor %d: index %d offset %d set independently",
					cmd, cur, got.CursorToken, got.CursorOffset)
			}
			if defined {
				if got.CursorToken >= len(got.Tokens) {
					t.Fatalf("%q cursor %d: index %d out of range", cmd, cur, got.CursorToken)
				}
				if got.CursorOffset > len(got.Tokens[got.CursorToken]) {
					t.Fatalf("%q cursor %d: offset %d exceeds token %q",
						cmd, cur, got.CursorOffset, got.Tokens[got.CursorToken])
				}
			}
		}
	}
}

func TestCursorMapping(t *testing.T) {
	cases := []struct {
		in         string
		cursor     int
		wantTok    int
		wantOffset int
	}{
		{"git status", 0, 0, 0},           // word start
		{"git status", 2, 0, 2},           // inside word
		{"git status", 3, 0, 3},           // just past word, before space
		{"git status", 4, 1, 0},           // start of second word
		{"git status", 10, 1, 6},          // end of string after word
		{"git  status", 4, -1, -1},        // strictly inside whitespace
		{"git ", 4, -1, -1},               // end of string after whitespace
		{"", 0, -1, -1},                   // empty command
		{`echo "hi there"`, 5, 1, 0},      // on the opening quote
		{`echo "hi there"`, 6, 1, 0},      // first content char
		{`echo "hi there"`, 9, 1, 3},      // inside quoted content
		{`echo "hi there"`, 14, 1, 8},     // on the closing quote
		{`echo "hi there"`, 15, 1, 8},     // just past the closing quote
		{`echo "open`, 10, 1, 4},          // unterminated quote, at end
		{`"a"b`, 3, 1, 0},                 // adjacent tokens: start wins
	}
	for _, c := range cases {
		got := ParseAt(c.in, c.cursor)
		if got.CursorToken != c.wantTok || got.CursorOffset != c.wantOffset {
			t.Errorf("ParseAt(%q, %d) = (%d,%d), want (%d,%d)",
				c.in, c.cursor, got.CursorToken, got.CursorOffset, c.wantTok, c.wantOffset)
		}
	}
}
