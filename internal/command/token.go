package command

import "strings"

// ReadKeyValue extracts the value bound to key from a free-form
// command line like:
//
//	INSERT ID=2301234 Name="Brian Goh" Programme="Digital Supply Chain" Mark=88.8
//
// The key match is case-insensitive and must sit at the start of the
// line or after whitespace, so ID never matches inside VALID. After
// the key, optional whitespace, then `=`, then optional whitespace; a
// candidate without `=` is rejected and the scan continues from the
// next occurrence. A value opening with `"` runs to the next quote
// (this format has no escape for quotes inside values); a missing
// closing quote is a *ParseError. An unquoted value runs to the next
// whitespace, and an empty unquoted value counts as not found.
func ReadKeyValue(line, key string) (string, bool, error) {
	from := 0
	for {
		pos := indexFold(line[from:], key)
		if pos < 0 {
			return "", false, nil
		}
		pos += from

		// Candidate must begin the line or follow whitespace.
		if pos > 0 && !isSpace(line[pos-1]) {
			from = pos + 1
			continue
		}

		p := pos + len(key)
		for p < len(line) && isSpace(line[p]) {
			p++
		}
		if p >= len(line) || line[p] != '=' {
			from = pos + 1
			continue
		}
		p++ // skip '='
		for p < len(line) && isSpace(line[p]) {
			p++
		}

		if p < len(line) && line[p] == '"' {
			p++
			end := strings.IndexByte(line[p:], '"')
			if end < 0 {
				return "", false, &ParseError{Kind: ErrKindUnterminatedQuote, Key: key}
			}
			return line[p : p+end], true, nil
		}

		start := p
		for p < len(line) && !isSpace(line[p]) {
			p++
		}
		if p == start {
			return "", false, nil
		}
		return line[start:p], true, nil
	}
}

// indexFold finds the first case-insensitive occurrence of key in s,
// or -1. Keys are ASCII, so a byte-position scan with EqualFold is
// exact.
func indexFold(s, key string) int {
	if len(key) == 0 {
		return 0
	}
	for i := 0; i+len(key) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(key)], key) {
			return i
		}
	}
	return -1
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}
