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

package constraintgen

import (
	"testing"

	"github.com/tomikazi/asn1topb/astmodel"
)

func intVal(i int64) *astmodel.Value { return &astmodel.Value{Kind: astmodel.VK_INTEGER, Int: i} }

func TestCompileSingleValue(t *testing.T) {
	c := &astmodel.Constraint{Kind: astmodel.CK_SINGLE_VALUE, Value: intVal(7)}
	if got, want := Compile(c, Int32Domain), "7"; got != want {
		t.Errorf("Compile(single int) = %q, want %q", got, want)
	}
	if got, want := Compile(c, StringDomain), "min_len: 7, max_len: 7"; got != want {
		t.Errorf("Compile(single string) = %q, want %q", got, want)
	}
}

func TestCompileRangeClosed(t *testing.T) {
	c := &astmodel.Constraint{Kind: astmodel.CK_RANGE, A: intVal(0), AClosed: true, B: intVal(150), BClosed: true}
	if got, want := Compile(c, Int32Domain), "gte: 0, lte: 150"; got != want {
		t.Errorf("Compile(range) = %q, want %q", got, want)
	}
}

func TestCompileRangeOpen(t *testing.T) {
	tests := []struct {
		name            string
		aClosed, bClosed bool
		want            string
	}{
		{"(a,b]", false, true, "gt: 1, lte: 10"},
		{"[a,b)", true, false, "gte: 1, lt: 10"},
		{"(a,b)", false, false, "gt: 1, lt: 10"},
	}
	for _, tt := range tests {
		c := &astmodel.Constraint{Kind: astmodel.CK_RANGE, A: intVal(1), AClosed: tt.aClosed, B: intVal(10), BClosed: tt.bClosed}
		if got := Compile(c, Int32Domain); got != tt.want {
			t.Errorf("%s: Compile() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCompileRangeStringAlwaysInclusive(t *testing.T) {
	c := &astmodel.Constraint{Kind: astmodel.CK_RANGE, A: intVal(1), AClosed: false, B: intVal(10), BClosed: false}
	if got, want := Compile(c, StringDomain), "min_len: 1, max_len: 10"; got != want {
		t.Errorf("Compile(string range, open) = %q, want %q", got, want)
	}
}

func TestCompileSize(t *testing.T) {
	c := &astmodel.Constraint{
		Kind:  astmodel.CK_SIZE,
		Inner: &astmodel.Constraint{Kind: astmodel.CK_RANGE, A: intVal(1), AClosed: true, B: intVal(10), BClosed: true},
	}
	if got, want := Compile(c, StringDomain), "min_len: 1, max_len: 10"; got != want {
		t.Errorf("Compile(SIZE) = %q, want %q", got, want)
	}
}

func TestCompileUnionIntersectionComplement(t *testing.T) {
	left := &astmodel.Constraint{Kind: astmodel.CK_SINGLE_VALUE, Value: intVal(1)}
	right := &astmodel.Constraint{Kind: astmodel.CK_SINGLE_VALUE, Value: intVal(2)}

	union := &astmodel.Constraint{Kind: astmodel.CK_UNION, Left: left, Right: right}
	if got, want := Compile(union, Int32Domain), "1,2"; got != want {
		t.Errorf("Compile(union) = %q, want %q", got, want)
	}

	inter := &astmodel.Constraint{Kind: astmodel.CK_INTERSECTION, Left: left, Right: right}
	if got, want := Compile(inter, Int32Domain), "1^2"; got != want {
		t.Errorf("Compile(intersection) = %q, want %q", got, want)
	}

	comp := &astmodel.Constraint{Kind: astmodel.CK_COMPLEMENT, Left: left, Right: right}
	if got, want := Compile(comp, Int32Domain), "1 EXCEPT 2"; got != want {
		t.Errorf("Compile(complement) = %q, want %q", got, want)
	}
}

func TestCompileAllExcept(t *testing.T) {
	c := &astmodel.Constraint{Kind: astmodel.CK_ALL_EXCEPT, Inner: &astmodel.Constraint{Kind: astmodel.CK_SINGLE_VALUE, Value: intVal(3)}}
	if got, want := Compile(c, Int32Domain), "ALL EXCEPT 3"; got != want {
		t.Errorf("Compile(all except) = %q, want %q", got, want)
	}
}

func TestCompileExtensible(t *testing.T) {
	c := &astmodel.Constraint{Kind: astmodel.CK_EXTENSIBLE}
	if got, want := Compile(c, Int32Domain), ""; got != want {
		t.Errorf("Compile(extensible) = %q, want %q", got, want)
	}
}

func TestCompileContaining(t *testing.T) {
	c := &astmodel.Constraint{Kind: astmodel.CK_CONTAINING, TypeName: "Foo"}
	if got, want := Compile(c, Int32Domain), "CONTAINING Foo"; got != want {
		t.Errorf("Compile(containing) = %q, want %q", got, want)
	}
}

func TestCompilePattern(t *testing.T) {
	c := &astmodel.Constraint{Kind: astmodel.CK_PATTERN, Value: &astmodel.Value{Kind: astmodel.VK_STRING, Str: "[a-z]+"}}
	if got, want := Compile(c, StringDomain), `PATTERN "[a-z]+"`; got != want {
		t.Errorf("Compile(pattern) = %q, want %q", got, want)
	}
}

func TestCompileSubconstraintsAppended(t *testing.T) {
	parent := &astmodel.Constraint{Kind: astmodel.CK_SINGLE_VALUE, Value: intVal(1)}
	parent.Next = &astmodel.Constraint{Kind: astmodel.CK_SINGLE_VALUE, Value: intVal(2)}
	if got, want := Compile(parent, Int32Domain), "1 2"; got != want {
		t.Errorf("Compile(with subconstraint) = %q, want %q", got, want)
	}
}

func TestCompileNil(t *testing.T) {
	if got := Compile(nil, Int32Domain); got != "" {
		t.Errorf("Compile(nil) = %q, want empty", got)
	}
}

// An unknown constraint Kind is an input-shape violation and goes
// through log.Fatalf; that exit path is not exercised by an in-process
// test.
