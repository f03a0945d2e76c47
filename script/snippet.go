package script

import (
	"strings"
	"unicode/utf8"
)

// Snippet is a piece of JavaScript source code. It may be a complete statement
// sequence or, intentionally, a partial one (an expression to be embedded).
//
// Snippets are values; no operation modifies a Snippet in place.
type Snippet string

func (js Snippet) String() string {
	return string(js)
}

// Append returns a new Snippet consisting of js followed by s.
// s is appended verbatim: if it holds data rather than code, clients have to
// encode it with ToJsString beforehand.
func (js Snippet) Append(s string) Snippet {
	return js + Snippet(s)
}

// Join concatenates parts, with js as the separator between them.
// Joining zero parts yields the empty Snippet, joining a single part yields
// that part unchanged.
func (js Snippet) Join(parts ...Snippet) Snippet {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	var sb strings.Builder
	sb.WriteString(string(parts[0]))
	for _, p := range parts[1:] {
		sb.WriteString(string(js))
		sb.WriteString(string(p))
	}
	return Snippet(sb.String())
}

// JoinStrings is like Join, for plain string parts.
func (js Snippet) JoinStrings(parts ...string) Snippet {
	return Snippet(strings.Join(parts, string(js)))
}

// Lines joins parts with newlines.
func Lines(parts ...Snippet) Snippet {
	return Snippet("\n").Join(parts...)
}

// Split slices js into all substrings separated by sep, as strings.Split does.
func (js Snippet) Split(sep string) []Snippet {
	return wrap(strings.Split(string(js), sep))
}

// SplitN slices js into at most n substrings separated by sep, starting
// from the left. n < 0 means no limit.
func (js Snippet) SplitN(sep string, n int) []Snippet {
	return wrap(strings.SplitN(string(js), sep, n))
}

// RSplit slices js into at most n substrings separated by sep, starting
// from the right. n < 0 means no limit. The resulting pieces are in
// left-to-right order.
func (js Snippet) RSplit(sep string, n int) []Snippet {
	if n < 0 || sep == "" {
		return js.SplitN(sep, n)
	}
	if n == 0 {
		return nil
	}
	var pieces []string
	s := string(js)
	for len(pieces) < n-1 {
		i := strings.LastIndex(s, sep)
		if i < 0 {
			break
		}
		pieces = append(pieces, s[i+len(sep):])
		s = s[:i]
	}
	pieces = append(pieces, s)
	for i, j := 0, len(pieces)-1; i < j; i, j = i+1, j-1 {
		pieces[i], pieces[j] = pieces[j], pieces[i]
	}
	return wrap(pieces)
}

// Fields splits js around runs of white space.
func (js Snippet) Fields() []Snippet {
	return wrap(strings.Fields(string(js)))
}

// Partition splits js at the first occurence of sep into the part before,
// the separator itself, and the part after. If sep is not found, the result
// is (js, "", "").
func (js Snippet) Partition(sep string) (before, separator, after Snippet) {
	if i := strings.Index(string(js), sep); i >= 0 {
		return js[:i], Snippet(sep), js[i+len(sep):]
	}
	return js, "", ""
}

// RPartition splits js at the last occurence of sep. If sep is not found,
// the result is ("", "", js).
func (js Snippet) RPartition(sep string) (before, separator, after Snippet) {
	if i := strings.LastIndex(string(js), sep); i >= 0 {
		return js[:i], Snippet(sep), js[i+len(sep):]
	}
	return "", "", js
}

// SplitLines splits js at line boundaries. Recognized boundaries are
// LF, CR, CR+LF, VT, FF, the ASCII separators FS, GS, RS, NEL and the
// Unicode line and paragraph separators. If keepEnds is set, the line
// boundaries are kept at the end of each line.
// A trailing line boundary does not produce an empty last line.
func (js Snippet) SplitLines(keepEnds bool) []Snippet {
	var lines []Snippet
	s := string(js)
	start := 0
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		if !isLineBoundary(r) {
			i += w
			continue
		}
		end := i + w
		if r == '\r' && end < len(s) && s[end] == '\n' {
			end++
		}
		if keepEnds {
			lines = append(lines, Snippet(s[start:end]))
		} else {
			lines = append(lines, Snippet(s[start:i]))
		}
		start, i = end, end
	}
	if start < len(s) {
		lines = append(lines, Snippet(s[start:]))
	}
	return lines
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

func wrap(pieces []string) []Snippet {
	if pieces == nil {
		return nil
	}
	snippets := make([]Snippet, len(pieces))
	for i, p := range pieces {
		snippets[i] = Snippet(p)
	}
	return snippets
}
