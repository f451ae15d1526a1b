// Copyright 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package identgen implements the three identifier-casing transforms
// asn1topb uses to turn ASN.1 mixed-case identifiers into Protobuf
// naming conventions. All three functions are pure: they
// never mutate their input and carry no package-level state.
package identgen

import "strings"

func isSeparator(b byte) bool {
	return b == '-' || b == '&' || b == '_' || b == '.' || isWhitespace(b)
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// ensureValidStart prefixes s with "_" if it is non-empty and starts
// with a digit, the way protoc-style identifier sanitizers guard a
// leading digit.
func ensureValidStart(s string) string {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return s
	}
	return "_" + s
}

// PascalCase converts name into Protobuf message-name style. It walks
// left to right, dropping the separators '-', '&', '_', '.' and whitespace
// (uppercasing the character that follows one), and collapses a run of
// consecutive uppercase letters down to a single leading uppercase
// letter, e.g. "PDU-ID" becomes "PduId". A result that would otherwise
// start with a digit is prefixed with "_".
func PascalCase(name string) string {
	var b strings.Builder
	b.Grow(len(name)*2 + 1)

	lastWasUpper := false
	forceUpper := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isSeparator(c) {
			forceUpper = true
			continue
		}
		if i == 0 {
			forceUpper = true
		}
		if forceUpper {
			b.WriteByte(toUpperASCII(c))
			lastWasUpper = true
			forceUpper = false
			continue
		}
		if isUpperASCII(c) {
			if lastWasUpper {
				b.WriteByte(toLowerASCII(c))
				// flag is left unchanged: the run of uppercase letters
				// keeps collapsing until a lowercase char or separator.
			} else {
				b.WriteByte(c)
				lastWasUpper = true
			}
			continue
		}
		b.WriteByte(c)
		lastWasUpper = false
	}
	return ensureValidStart(b.String())
}

// LowerSnakeCase converts name into Protobuf field-name style: internal
// '-', '.' and whitespace become '_', a leading '&' (ASN.1 class field
// sigil) is dropped, and each internal uppercase letter is preceded by
// an inserted '_' unless it immediately follows a separator or another
// uppercase letter, e.g. "URI-Path" becomes "uri_path" and
// "&ObjectSetRef" becomes "object_set_ref". A result that would
// otherwise start with a digit is prefixed with "_".
func LowerSnakeCase(name string) string {
	var b strings.Builder
	b.Grow(len(name)*2 + 1)

	justChanged := true // position 0 never gets a leading underscore
	for i := 0; i < len(name); i++ {
		c := name[i]
		if i == 0 && c == '&' {
			continue
		}
		switch {
		case c == '-' || c == '.' || c == '_' || isWhitespace(c):
			b.WriteByte('_')
			justChanged = true
		case isUpperASCII(c):
			if !justChanged {
				b.WriteByte('_')
			}
			b.WriteByte(toLowerASCII(c))
			// A converted uppercase char counts as a change: a run of
			// consecutive uppercase letters collapses without internal
			// underscores (e.g. "URI" -> "uri", not "u_r_i").
			justChanged = true
		default:
			b.WriteByte(c)
			justChanged = false
		}
	}
	return ensureValidStart(b.String())
}

// ScreamingSnakeCase converts name into Protobuf enum-value style:
// identical separator handling to LowerSnakeCase, but every letter is
// uppercased and an underscore is inserted before every uppercase
// letter that follows any letter, e.g. "myEnumVal" becomes
// "MY_ENUM_VAL". A result that would otherwise start with a digit is
// prefixed with "_".
func ScreamingSnakeCase(name string) string {
	var b strings.Builder
	b.Grow(len(name)*2 + 1)

	sawLetter := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if i == 0 && c == '&' {
			continue
		}
		switch {
		case c == '-' || c == '.' || c == '_' || isWhitespace(c):
			b.WriteByte('_')
		case isUpperASCII(c):
			if sawLetter {
				b.WriteByte('_')
			}
			b.WriteByte(c)
			sawLetter = true
		case isLowerASCII(c):
			b.WriteByte(toUpperASCII(c))
			sawLetter = true
		default:
			b.WriteByte(c)
		}
	}
	return ensureValidStart(b.String())
}

func isUpperASCII(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLowerASCII(c byte) bool { return c >= 'a' && c <= 'z' }

func toUpperASCII(c byte) byte {
	if isLowerASCII(c) {
		return c - ('a' - 'A')
	}
	return c
}

func toLowerASCII(c byte) byte {
	if isUpperASCII(c) {
		return c + ('a' - 'A')
	}
	return c
}
