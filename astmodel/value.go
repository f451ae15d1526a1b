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

package astmodel

// ValueKind identifies the shape of an ASN.1 literal value.
type ValueKind string

const (
	VK_INTEGER           ValueKind = "INTEGER"
	VK_REAL              ValueKind = "REAL"
	VK_BOOLEAN           ValueKind = "BOOLEAN"
	VK_STRING            ValueKind = "STRING"
	VK_BITSTRING         ValueKind = "BITSTRING"
	VK_TUPLE             ValueKind = "TUPLE"
	VK_QUADRUPLE         ValueKind = "QUADRUPLE"
	VK_REFERENCED        ValueKind = "REFERENCED"
	VK_CHOICE_IDENTIFIER ValueKind = "CHOICE_IDENTIFIER"
	VK_NULL              ValueKind = "NULL"
	VK_NOVALUE           ValueKind = "NOVALUE"
	VK_MAXMIN            ValueKind = "MAXMIN"
	VK_UNPARSED          ValueKind = "UNPARSED"
)

// Value is a single ASN.1 literal value. Only the fields relevant to
// Kind are populated.
type Value struct {
	Kind ValueKind `yaml:"kind"`

	Int  int64   `yaml:"int,omitempty"`
	Real float64 `yaml:"real,omitempty"`
	Bool bool    `yaml:"bool,omitempty"`
	Str  string  `yaml:"str,omitempty"`

	// Bits is the raw sequence of '0'/'1' characters for VK_BITSTRING.
	Bits string `yaml:"bits,omitempty"`

	// Components is the dotted reference path for VK_REFERENCED.
	Components []string `yaml:"components,omitempty"`

	// Tag and Inner describe a VK_CHOICE_IDENTIFIER: the chosen
	// alternative's tag, and its recursively rendered value.
	Tag   string `yaml:"tag,omitempty"`
	Inner *Value `yaml:"inner,omitempty"`

	// Raw holds copy-through bytes for VK_UNPARSED.
	Raw []byte `yaml:"raw,omitempty"`

	// IsMax / IsMin mark the ASN.1 MAX / MIN keywords for VK_MAXMIN.
	IsMax bool `yaml:"is_max,omitempty"`
	IsMin bool `yaml:"is_min,omitempty"`
}
