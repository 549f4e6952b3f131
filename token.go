// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package ppmtrie

import (
	"strings"
	"unicode/utf16"
)

// Token is the label of a trie edge. It is a UTF-16 code unit.
type Token uint16

// EOS is the end-of-string sentinel. The root carries it as its token and
// terminal nodes mark the end of a document. It sorts after all other
// tokens.
const EOS Token = 0xffff

// Tokens converts the string into its UTF-16 code units.
func Tokens(s string) []Token {
	u := utf16.Encode([]rune(s))
	t := make([]Token, len(u))
	for i, c := range u {
		t[i] = Token(c)
	}
	return t
}

// TokenString converts tokens back into a string. EOS tokens are skipped.
func TokenString(t []Token) string {
	u := make([]uint16, 0, len(t))
	for _, c := range t {
		if c == EOS {
			continue
		}
		u = append(u, uint16(c))
	}
	return string(utf16.Decode(u))
}

// String returns a printable form of the token. EOS is printed as "$".
func (t Token) String() string {
	if t == EOS {
		return "$"
	}
	return TokenString([]Token{t})
}

// hasEOS checks whether the string contains the sentinel code point.
func hasEOS(s string) bool {
	return strings.ContainsRune(s, rune(EOS))
}
