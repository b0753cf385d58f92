// Package cmdline splits raw command strings into tokens and maps cursor
// offsets onto them for completion support.
package cmdline

import "strings"

// TokenKind classifies a lexed span of the command string.
type TokenKind int

const (
	KindWord TokenKind = iota
	KindQuoted
	KindWhitespace
)

// Token is a half-open span [Start, End) of the command string. Tokens
// partition the input contiguously: the first starts at 0, the last ends at
// len(command), and there are no gaps.
type Token struct {
	Start int
	End   int
	Kind  TokenKind
}

// Command is the parsed form of a command line. Tokens holds the
// non-whitespace token values in order, with surrounding quotes stripped.
// CursorToken/CursorOffset identify which token a cursor offset falls in;
// both are -1 when the cursor sits on whitespace (or no cursor was given).
// They are never set independently.
type Command struct {
	Tokens       []string
	CursorToken  int
	CursorOffset int
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

// Tokenize lexes command into word, quoted and whitespace tokens.
// A double-quoted run spans from the opening quote to the closing quote
// inclusive, or to end of string when unterminated.
func Tokenize(command string) []Token {
	var toks []Token
	i := 0
	for i < len(command) {
		start := i
		switch {
		case isSpace(command[i]):
			for i < len(command) && isSpace(command[i]) {
				i++
			}
			toks = append(toks, Token{Start: start, End: i, Kind: KindWhitespace})
		case command[i] == '"':
			i++
			for i < len(command) && command[i] != '"' {
				i++
			}
			if i < len(command) {
				i++ // closing quote
			}
			toks = append(toks, Token{Start: start, End: i, Kind: KindQuoted})
		default:
			for i < len(command) && !isSpace(command[i]) && command[i] != '"' {
				i++
			}
			toks = append(toks, Token{Start: start, End: i, Kind: KindWord})
		}
	}
	return toks
}

// value returns the semantic content of a token: quoted tokens lose their
// surrounding quotes (an unterminated quote keeps everything after it).
func value(command string, t Token) string {
	s := command[t.Start:t.End]
	if t.Kind != KindQuoted {
		return s
	}
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}

// contentStart is the offset cursor positions are measured from: one past
// the opening quote for quoted tokens, the token start otherwise.
func contentStart(t Token) int {
	if t.Kind == KindQuoted {
		return t.Start + 1
	}
	return t.Start
}

// Parse tokenizes command without cursor mapping.
func Parse(command string) Command {
	return ParseAt(command, -1)
}

// ParseAt tokenizes command and maps cursor (an offset into command) to a
// (token index, intra-token offset) pair. cursor < 0 skips the mapping.
//
// The cursor maps to a token when it lies anywhere from the token's start
// through one past its last character; a cursor on whitespace maps to
// nothing. For quoted tokens the offset excludes the opening quote, so a
// cursor sitting exactly on the opening quote yields offset 0.
func ParseAt(command string, cursor int) Command {
	toks := Tokenize(command)
	cmd := Command{CursorToken: -1, CursorOffset: -1}
	idx := -1
	endMatch := -1 // token whose End the cursor sits on, as a fallback
	for _, t := range toks {
		if t.Kind == KindWhitespace {
			continue
		}
		idx++
		v := value(command, t)
		cmd.Tokens = append(cmd.Tokens, v)
		if cursor < 0 || cmd.CursorToken >= 0 {
			continue
		}
		if cursor >= t.Start && cursor < t.End {
			cmd.CursorToken = idx
			off := cursor - contentStart(t)
			if off < 0 {
				off = 0 // cursor on the opening quote
			}
			if off > len(v) {
				off = len(v) // cursor on the closing quote
			}
			cmd.CursorOffset = off
			continue
		}
		if cursor == t.End {
			endMatch = idx
		}
	}
	// Cursor just past a token's last character counts as sitting at the end
	// of that token, unless another token claimed it by starting there.
	if cursor >= 0 && cmd.CursorToken < 0 && endMatch >= 0 {
		cmd.CursorToken = endMatch
		cmd.CursorOffset = len(cmd.Tokens[endMatch])
	}
	return cmd
}
