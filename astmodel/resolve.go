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

import "fmt"

// SymbolTable maps a module's top-level identifiers to their defining
// Expr, as an external fixer pass would build while resolving
// cross-references.
type SymbolTable map[string]*Expr

// NewSymbolTable builds a SymbolTable from a Module's top-level
// declarations.
func NewSymbolTable(mod *Module) SymbolTable {
	st := make(SymbolTable, len(mod.Declarations))
	for _, d := range mod.Declarations {
		if d.Identifier != "" {
			st[d.Identifier] = d
		}
	}
	return st
}

// ResolveTerminalType follows expr's REFERENCE chain through st until it
// reaches a non-REFERENCE, non-TYPEREF node. This is the helper an
// external fixer pass would normally supply; in a fully resolved
// input tree, expr.Resolved is already populated and is returned
// directly. The walk below exists so this module is self-contained and
// testable without requiring every fixture to pre-populate Resolved.
func ResolveTerminalType(st SymbolTable, expr *Expr) (*Expr, error) {
	if expr == nil {
		return nil, fmt.Errorf("astmodel: ResolveTerminalType called with nil expr")
	}
	if expr.Resolved != nil {
		return expr.Resolved, nil
	}

	seen := map[string]bool{}
	cur := expr
	for cur.ExprType == REFERENCE || cur.MetaType == AMT_TYPEREF {
		var name string
		switch {
		case cur.Reference != nil && len(cur.Reference.Components) > 0:
			name = cur.Reference.Components[0]
		case cur.Identifier != "":
			name = cur.Identifier
		default:
			return nil, fmt.Errorf("astmodel: cannot resolve unnamed reference at %s:%d", cur.Source, cur.Line)
		}
		if seen[name] {
			return nil, fmt.Errorf("astmodel: circular reference detected resolving %q", name)
		}
		seen[name] = true

		next, ok := st[name]
		if !ok {
			return nil, fmt.Errorf("astmodel: unresolved reference %q", name)
		}
		cur = next
	}
	return cur, nil
}
