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

// ConstraintKind identifies the shape of a subtype constraint node.
type ConstraintKind string

const (
	CK_SINGLE_VALUE     ConstraintKind = "SINGLE_VALUE"
	CK_RANGE            ConstraintKind = "RANGE"
	CK_SIZE             ConstraintKind = "SIZE"
	CK_FROM             ConstraintKind = "FROM"
	CK_UNION            ConstraintKind = "UNION"
	CK_INTERSECTION     ConstraintKind = "INTERSECTION"
	CK_COMPLEMENT       ConstraintKind = "COMPLEMENT"
	CK_ALL_EXCEPT       ConstraintKind = "ALL_EXCEPT"
	CK_EXTENSIBLE       ConstraintKind = "EXTENSIBLE"
	CK_WITH_COMPONENTS  ConstraintKind = "WITH_COMPONENTS"
	CK_CONTAINING       ConstraintKind = "CONTAINING"
	CK_PATTERN          ConstraintKind = "PATTERN"
)

// Constraint is a node in an ASN.1 subtype constraint tree. Only the
// fields relevant to Kind are populated; the rest are left zero.
type Constraint struct {
	Kind ConstraintKind `yaml:"kind"`

	// Value holds the operand for CK_SINGLE_VALUE and CK_PATTERN.
	Value *Value `yaml:"value,omitempty"`

	// A, B are the range endpoints for CK_RANGE. AClosed/BClosed report
	// whether the respective endpoint is inclusive ("[") as opposed to
	// exclusive ("(").
	A       *Value `yaml:"a,omitempty"`
	AClosed bool   `yaml:"a_closed,omitempty"`
	B       *Value `yaml:"b,omitempty"`
	BClosed bool   `yaml:"b_closed,omitempty"`

	// Inner is the wrapped constraint for CK_SIZE, CK_FROM, and
	// CK_ALL_EXCEPT.
	Inner *Constraint `yaml:"inner,omitempty"`

	// Left, Right are the operands of CK_UNION, CK_INTERSECTION and
	// CK_COMPLEMENT (EXCEPT).
	Left  *Constraint `yaml:"left,omitempty"`
	Right *Constraint `yaml:"right,omitempty"`

	// Children holds the per-component sub-constraints of
	// CK_WITH_COMPONENTS.
	Children []*Constraint `yaml:"children,omitempty"`

	// TypeName is the governed type for CK_CONTAINING.
	TypeName string `yaml:"type_name,omitempty"`

	// Next chains an appended sub-constraint: when non-nil, the
	// compiled result of Next is
	// appended after this constraint's own compiled text, separated by a
	// single space.
	Next *Constraint `yaml:"next,omitempty"`
}
