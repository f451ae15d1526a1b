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

// Package constraintgen compiles an ASN.1 subtype constraint tree into a
// protoc-gen-validate rule-expression string.
package constraintgen

import (
	"fmt"
	"strings"

	log "github.com/golang/glog"

	"github.com/tomikazi/asn1topb/astmodel"
	"github.com/tomikazi/asn1topb/valuerender"
)

// Domain selects which rule vocabulary a constraint compiles against: a
// numeric domain (gte/lte/in) or a length domain (min_len/max_len).
type Domain int

const (
	// Int32Domain interprets constraint values as a 32-bit integer value
	// domain.
	Int32Domain Domain = iota
	// StringDomain interprets constraint values as a string-length
	// domain.
	StringDomain
)

// atvMax and atvMin render the ASN.1 MAX and MIN keywords under
// Int32Domain.
const atvMax = "2147483647"
const atvMin = "0"

// Compile translates c into a rule-expression string for the given
// domain. A nil constraint compiles to the empty string. An unknown
// constraint Kind is an input-shape violation: the caller's AST did
// not come from a conforming fixer, so Compile calls log.Fatalf
// rather than returning a degraded string.
func Compile(c *astmodel.Constraint, domain Domain) string {
	if c == nil {
		return ""
	}
	s := compileOne(c, domain)
	if c.Next != nil {
		next := Compile(c.Next, domain)
		if next != "" {
			if s != "" {
				s += " " + next
			} else {
				s = next
			}
		}
	}
	return s
}

func compileOne(c *astmodel.Constraint, domain Domain) string {
	switch c.Kind {
	case astmodel.CK_SINGLE_VALUE:
		v := renderValue(c.Value, domain)
		if domain == StringDomain {
			return fmt.Sprintf("min_len: %s, max_len: %s", v, v)
		}
		return v

	case astmodel.CK_RANGE:
		return compileRange(c, domain)

	case astmodel.CK_SIZE:
		return Compile(c.Inner, StringDomain)

	case astmodel.CK_FROM:
		return "FROM " + Compile(c.Inner, domain)

	case astmodel.CK_UNION:
		return Compile(c.Left, domain) + "," + Compile(c.Right, domain)

	case astmodel.CK_INTERSECTION:
		return Compile(c.Left, domain) + "^" + Compile(c.Right, domain)

	case astmodel.CK_COMPLEMENT:
		return Compile(c.Left, domain) + " EXCEPT " + Compile(c.Right, domain)

	case astmodel.CK_ALL_EXCEPT:
		return "ALL EXCEPT " + Compile(c.Inner, domain)

	case astmodel.CK_EXTENSIBLE:
		return ""

	case astmodel.CK_WITH_COMPONENTS:
		return compileWithComponents(c, domain)

	case astmodel.CK_CONTAINING:
		return "CONTAINING " + c.TypeName

	case astmodel.CK_PATTERN:
		return "PATTERN " + renderValue(c.Value, domain)

	default:
		log.Fatalf("constraintgen: unknown constraint kind %q (malformed input AST)", c.Kind)
		return ""
	}
}

func compileRange(c *astmodel.Constraint, domain Domain) string {
	a := renderValue(c.A, domain)
	b := renderValue(c.B, domain)

	if domain == StringDomain {
		// String ranges always render inclusive bounds, regardless of
		// openness.
		return fmt.Sprintf("min_len: %s, max_len: %s", a, b)
	}

	lo, hi := "gte", "lte"
	if !c.AClosed {
		lo = "gt"
	}
	if !c.BClosed {
		hi = "lt"
	}
	return fmt.Sprintf("%s: %s, %s: %s", lo, a, hi, b)
}

// compileWithComponents emits the textual approximation for WITH
// COMPONENT(S): there is no protoc-gen-validate analog for
// per-component constraints, so this degrades to a best-effort
// comment-like string rather than a structurally valid rule.
func compileWithComponents(c *astmodel.Constraint, domain Domain) string {
	parts := make([]string, 0, len(c.Children))
	for _, child := range c.Children {
		parts = append(parts, Compile(child, domain))
	}
	return "WITH COMPONENTS { " + strings.Join(parts, ", ") + " }"
}

func renderValue(v *astmodel.Value, domain Domain) string {
	if v == nil {
		return ""
	}
	if v.Kind == astmodel.VK_MAXMIN {
		if v.IsMax {
			return atvMax
		}
		return atvMin
	}
	return valuerender.Render(v)
}
