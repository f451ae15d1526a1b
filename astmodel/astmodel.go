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

// Package astmodel defines the input contract that asn1topb consumes: a
// fully resolved abstract syntax tree for a single ASN.1 module, as
// produced by an external lexer/parser and fixer pass (out of scope for
// this module). The tree is read-only from the translator's point of
// view.
package astmodel

// MetaType classifies what kind of declaration an Expr represents.
type MetaType string

const (
	// AMT_TYPE is a type definition.
	AMT_TYPE MetaType = "TYPE"
	// AMT_VALUE is a value assignment.
	AMT_VALUE MetaType = "VALUE"
	// AMT_VALUESET is a value set assignment.
	AMT_VALUESET MetaType = "VALUESET"
	// AMT_TYPEREF is a reference to a previously defined type.
	AMT_TYPEREF MetaType = "TYPEREF"
)

// ExprType classifies the shape of an Expr's value domain.
type ExprType string

const (
	INTEGER           ExprType = "INTEGER"
	BOOLEAN           ExprType = "BOOLEAN"
	IA5String         ExprType = "IA5String"
	BMPString         ExprType = "BMPString"
	UTF8String        ExprType = "UTF8String"
	TeletexString     ExprType = "TeletexString"
	OBJECT_IDENTIFIER ExprType = "OBJECT_IDENTIFIER"
	BIT_STRING        ExprType = "BIT_STRING"
	ENUMERATED        ExprType = "ENUMERATED"
	SEQUENCE          ExprType = "SEQUENCE"
	SEQUENCE_OF       ExprType = "SEQUENCE_OF"
	CHOICE            ExprType = "CHOICE"
	REFERENCE         ExprType = "REFERENCE"
	CLASSDEF          ExprType = "CLASSDEF"
	UNIVERVAL         ExprType = "UNIVERVAL"
	EXTENSIBLE        ExprType = "EXTENSIBLE"
)

// Module is the root of a parsed ASN.1 module: an ordered sequence of
// top-level expressions (type assignments, value assignments, value set
// assignments, class definitions).
type Module struct {
	Name         string  `yaml:"name"`
	OID          []int   `yaml:"oid,omitempty"`
	SourceFile   string  `yaml:"source_file"`
	Declarations []*Expr `yaml:"declarations"`

	// Prelude holds module-level comment lines emitted verbatim at the
	// top of the generated file.
	Prelude []string `yaml:"prelude,omitempty"`

	// Imports lists the modules this module depends on, each emitted as
	// an import declaration with an optional traceability OID comment.
	Imports []ModuleImport `yaml:"imports,omitempty"`
}

// ModuleImport names one module dependency.
type ModuleImport struct {
	Name string `yaml:"name"`
	OID  []int  `yaml:"oid,omitempty"`
}

// Expr is a single node of the ASN.1 expression tree.
type Expr struct {
	// Identifier is the name bound to this expression, if any. An empty
	// Identifier means the node is anonymous (e.g. an inline member type).
	Identifier string `yaml:"identifier,omitempty"`

	MetaType MetaType `yaml:"meta_type"`
	ExprType ExprType `yaml:"expr_type"`

	// Members holds child expressions in declaration order: SEQUENCE/SET
	// components, CHOICE alternatives, ENUMERATED UNIVERVAL entries.
	Members []*Expr `yaml:"members,omitempty"`

	Constraint *Constraint `yaml:"constraint,omitempty"`

	// Value is populated when MetaType is AMT_VALUE (or for a UNIVERVAL
	// enum member's explicit numeric tag).
	Value *Value `yaml:"value,omitempty"`

	Reference *Reference `yaml:"reference,omitempty"`

	Parameters      []*Param `yaml:"parameters,omitempty"`
	Specializations []*Expr  `yaml:"specializations,omitempty"`

	Table *ClassTable `yaml:"table,omitempty"`

	Source string `yaml:"source,omitempty"`
	Line   int    `yaml:"line,omitempty"`
	Index  int    `yaml:"index,omitempty"`

	// Resolved is the terminal type this node's reference chain points to,
	// as computed by the external fixer pass. It is not part of the
	// on-disk fixture format; tests and ResolveTerminalType populate it.
	Resolved *Expr `yaml:"-"`
}

// Reference is an ordered list of dotted component names, e.g. a
// reference to "Mod.Type.Field" is Components: []string{"Mod", "Type",
// "Field"}.
type Reference struct {
	Components []string `yaml:"components"`
}

// ParamKind classifies a formal parameter governing a parameterized type.
type ParamKind string

const (
	PK_TYPE      ParamKind = "TYPE"
	PK_VALUE     ParamKind = "VALUE"
	PK_VALUE_SET ParamKind = "VALUE_SET"
)

// Param is a formal parameter of a parameterized ASN.1 type.
type Param struct {
	Governor string `yaml:"governor,omitempty"`
	Arg      string `yaml:"arg"`
}

// ClassTable is an information-object-class table: an ordered list of
// rows, each an ordered list of cells keyed by the class's field
// identifiers.
type ClassTable struct {
	Columns []string `yaml:"columns"`
	Rows    []Row    `yaml:"rows"`
}

// Row is one row of a ClassTable.
type Row struct {
	Cells []Cell `yaml:"cells"`
}

// Cell is a single table entry. NewRef marks a cell that introduces a
// new field (as opposed to merely repeating a governing class field).
type Cell struct {
	Identifier string `yaml:"identifier"`
	Value      *Value `yaml:"value,omitempty"`
	NewRef     bool   `yaml:"new_ref,omitempty"`
}
