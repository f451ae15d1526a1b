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

import "testing"

func TestResolveTerminalTypeDirect(t *testing.T) {
	age := &Expr{Identifier: "Age", MetaType: AMT_TYPE, ExprType: INTEGER}
	mod := &Module{Declarations: []*Expr{age}}
	st := NewSymbolTable(mod)

	ref := &Expr{
		Identifier: "UserAge",
		MetaType:   AMT_TYPE,
		ExprType:   REFERENCE,
		Reference:  &Reference{Components: []string{"Age"}},
	}

	got, err := ResolveTerminalType(st, ref)
	if err != nil {
		t.Fatalf("ResolveTerminalType: %v", err)
	}
	if got != age {
		t.Errorf("ResolveTerminalType = %v, want %v", got, age)
	}
}

func TestResolveTerminalTypeChain(t *testing.T) {
	age := &Expr{Identifier: "Age", MetaType: AMT_TYPE, ExprType: INTEGER}
	years := &Expr{
		Identifier: "Years",
		MetaType:   AMT_TYPE,
		ExprType:   REFERENCE,
		Reference:  &Reference{Components: []string{"Age"}},
	}
	mod := &Module{Declarations: []*Expr{age, years}}
	st := NewSymbolTable(mod)

	ref := &Expr{
		Identifier: "UserAge",
		MetaType:   AMT_TYPE,
		ExprType:   REFERENCE,
		Reference:  &Reference{Components: []string{"Years"}},
	}

	got, err := ResolveTerminalType(st, ref)
	if err != nil {
		t.Fatalf("ResolveTerminalType: %v", err)
	}
	if got != age {
		t.Errorf("ResolveTerminalType = %v, want %v", got, age)
	}
}

func TestResolveTerminalTypePreResolved(t *testing.T) {
	age := &Expr{Identifier: "Age", MetaType: AMT_TYPE, ExprType: INTEGER}
	ref := &Expr{Identifier: "UserAge", MetaType: AMT_TYPE, ExprType: REFERENCE, Resolved: age}

	got, err := ResolveTerminalType(nil, ref)
	if err != nil {
		t.Fatalf("ResolveTerminalType: %v", err)
	}
	if got != age {
		t.Errorf("ResolveTerminalType = %v, want %v", got, age)
	}
}

func TestResolveTerminalTypeCircular(t *testing.T) {
	a := &Expr{Identifier: "A", MetaType: AMT_TYPE, ExprType: REFERENCE, Reference: &Reference{Components: []string{"B"}}}
	b := &Expr{Identifier: "B", MetaType: AMT_TYPE, ExprType: REFERENCE, Reference: &Reference{Components: []string{"A"}}}
	mod := &Module{Declarations: []*Expr{a, b}}
	st := NewSymbolTable(mod)

	if _, err := ResolveTerminalType(st, a); err == nil {
		t.Errorf("ResolveTerminalType on circular reference: got nil error, want non-nil")
	}
}

func TestResolveTerminalTypeUnresolved(t *testing.T) {
	st := SymbolTable{}
	ref := &Expr{Identifier: "X", ExprType: REFERENCE, Reference: &Reference{Components: []string{"Missing"}}}
	if _, err := ResolveTerminalType(st, ref); err == nil {
		t.Errorf("ResolveTerminalType on unknown reference: got nil error, want non-nil")
	}
}
