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

// Package valuerender pretty-prints ASN.1 literal values for embedding
// inside rule strings and constant-value rules.
package valuerender

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/golang/glog"

	"github.com/tomikazi/asn1topb/astmodel"
)

// Render converts v into its short ASN.1 text form. A nil value
// renders as the empty string.
func Render(v *astmodel.Value) string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case astmodel.VK_INTEGER:
		return strconv.FormatInt(v.Int, 10)

	case astmodel.VK_REAL:
		return fmt.Sprintf("%f", v.Real)

	case astmodel.VK_BOOLEAN:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"

	case astmodel.VK_STRING:
		return `"` + escapeQuotes(v.Str) + `"`

	case astmodel.VK_BITSTRING:
		if len(v.Bits)%8 != 0 {
			return "'" + v.Bits + "'B"
		}
		return "'" + bitsToHex(v.Bits) + "'H"

	case astmodel.VK_TUPLE:
		hi, lo := (v.Int>>4)&0xF, v.Int&0xF
		return fmt.Sprintf("{%d, %d}", hi, lo)

	case astmodel.VK_QUADRUPLE:
		a := (v.Int >> 24) & 0xFF
		b := (v.Int >> 16) & 0xFF
		c := (v.Int >> 8) & 0xFF
		d := v.Int & 0xFF
		return fmt.Sprintf("{%d, %d, %d, %d}", a, b, c, d)

	case astmodel.VK_REFERENCED:
		return strings.Join(v.Components, ".")

	case astmodel.VK_CHOICE_IDENTIFIER:
		return v.Tag + Render(v.Inner)

	case astmodel.VK_NULL:
		return "NULL"

	case astmodel.VK_NOVALUE:
		return ""

	case astmodel.VK_MAXMIN:
		return ""

	case astmodel.VK_UNPARSED:
		return string(v.Raw)

	default:
		log.Fatalf("valuerender: unknown value kind %q (malformed input AST)", v.Kind)
		return ""
	}
}

// escapeQuotes escapes every '"' in s as '\"' and passes every other
// character through unchanged.
func escapeQuotes(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for _, r := range s {
		if r == '"' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// bitsToHex packs a string of '0'/'1' characters, whose length must be a
// multiple of 8, into uppercase hex digit pairs.
func bitsToHex(bits string) string {
	var b strings.Builder
	b.Grow(len(bits) / 4)
	for i := 0; i < len(bits); i += 4 {
		nibble := bits[i : i+4]
		var v int64
		for _, c := range nibble {
			v <<= 1
			if c == '1' {
				v |= 1
			}
		}
		b.WriteString(strings.ToUpper(strconv.FormatInt(v, 16)))
	}
	return b.String()
}
