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

// Package translate implements the expression translator: the central
// dispatcher that walks an ASN.1 expression tree and emits the
// equivalent Protobuf IR.
package translate

import (
	"fmt"

	log "github.com/golang/glog"

	"github.com/tomikazi/asn1topb/astmodel"
	"github.com/tomikazi/asn1topb/constraintgen"
	"github.com/tomikazi/asn1topb/identgen"
	"github.com/tomikazi/asn1topb/protoir"
	"github.com/tomikazi/asn1topb/util"
)

// Options configures a single translation run.
type Options struct {
	// Symbols resolves cross-module type references for TYPEREF
	// expansion. If nil, a symbol table is
	// derived from the module being translated.
	Symbols astmodel.SymbolTable
}

// Translate walks mod's top-level declarations in order and returns the
// equivalent Protobuf IR module. Errors encountered translating
// individual declarations are accumulated and do not abort translation
// of the remaining declarations: the generator is best-effort over a
// module.
func Translate(mod *astmodel.Module, opts Options) (*protoir.Module, util.Errors) {
	st := opts.Symbols
	if st == nil {
		st = astmodel.NewSymbolTable(mod)
	}

	pm := &protoir.Module{
		Name:       mod.Name,
		SourceFile: mod.SourceFile,
		OID:        mod.OID,
		Comments:   mod.Prelude,
	}
	for _, imp := range mod.Imports {
		pm.AppendImport(&protoir.Import{
			Path: identgen.LowerSnakeCase(imp.Name),
			OID:  imp.OID,
		})
	}

	var errs util.Errors
	for _, decl := range mod.Declarations {
		errs = util.AppendErrs(errs, translateDecl(pm, decl, st))
	}
	return pm, errs
}

// translateDecl dispatches one top-level declaration through a
// priority-ordered rule list. The first matching rule wins; later
// rules are not considered once one has fired.
func translateDecl(pm *protoir.Module, expr *astmodel.Expr, st astmodel.SymbolTable) util.Errors {
	var errs util.Errors

	// Rule 1: specializations present. The parametric template itself is
	// never emitted, only each concrete specialization.
	if len(expr.Specializations) > 0 {
		for _, spec := range expr.Specializations {
			errs = util.AppendErrs(errs, translateDecl(pm, spec, st))
		}
		return errs
	}

	// Rule 2: anonymous expressions emit nothing.
	if expr.Identifier == "" {
		return nil
	}

	switch {
	// Rule 3: ENUMERATED.
	case expr.ExprType == astmodel.ENUMERATED:
		pm.AppendEnum(buildEnum(expr))

	// Rule 4: VALUE meta-type.
	case expr.MetaType == astmodel.AMT_VALUE:
		errs = util.AppendErrs(errs, translateValue(pm, expr, st))

	// Rule 5: INTEGER VALUE SET.
	case expr.MetaType == astmodel.AMT_VALUESET && expr.ExprType == astmodel.INTEGER:
		translateIntegerValueSet(pm, expr)

	// Rule 6: TYPE meta-type, non-constructed.
	case expr.MetaType == astmodel.AMT_TYPE && isScalarExprType(expr.ExprType):
		translateScalarType(pm, expr)

	// Rule 7: SEQUENCE / SEQUENCE OF.
	case expr.ExprType == astmodel.SEQUENCE || expr.ExprType == astmodel.SEQUENCE_OF:
		msg := newMessage(expr)
		errs = util.AppendErrs(errs, processChildren(msg, expr, st, expr.ExprType == astmodel.SEQUENCE_OF))
		pm.AppendMessage(msg)

	// Rule 8: CHOICE.
	case expr.ExprType == astmodel.CHOICE:
		msg := newMessage(expr)
		oneof := &protoir.Oneof{Name: identgen.LowerSnakeCase(expr.Identifier)}
		fields, cerrs := buildChildFields(expr, st, false)
		errs = util.AppendErrs(errs, cerrs)
		for _, f := range fields {
			oneof.AppendField(f)
		}
		msg.AppendOneof(oneof)
		pm.AppendMessage(msg)

	// Rule 9: CLASSDEF. Protobuf has no analog; no output.
	case expr.ExprType == astmodel.CLASSDEF:

	// Rule 10: TYPEREF.
	case expr.MetaType == astmodel.AMT_TYPEREF:
		errs = util.AppendErrs(errs, translateTyperef(pm, expr, st))

	// Rule 11: VALUESET, non-integer.
	case expr.MetaType == astmodel.AMT_VALUESET:

	// Rule 12: anything else.
	default:
		log.Errorf("asn1topb: unhandled expression %s:%d (meta=%s, expr=%s)", expr.Source, expr.Line, expr.MetaType, expr.ExprType)
		errs = util.AppendErr(errs, fmt.Errorf("unhandled expression %s:%d", expr.Source, expr.Line))
	}

	return errs
}

// newMessage allocates a Message for expr and attaches its formal
// parameters as comments plus derived ProtoParam entries.
func newMessage(expr *astmodel.Expr) *protoir.Message {
	msg := &protoir.Message{
		Name:      expr.Identifier,
		SpecIndex: expr.Line,
		UniqueID:  expr.Index,
	}
	for _, p := range expr.Parameters {
		msg.Comments = append(msg.Comments, fmt.Sprintf("Param %s:%s", p.Governor, p.Arg))
		msg.Parameters = append(msg.Parameters, &protoir.Param{
			Name: p.Arg,
			Kind: inferParamKind(p),
		})
	}
	return msg
}

// inferParamKind derives a parameter's kind from its governor and
// argument: no governor means a type parameter, a lowercase argument a
// value parameter, anything else a value-set parameter.
func inferParamKind(p *astmodel.Param) protoir.ParamKind {
	switch {
	case p.Governor == "":
		return protoir.ParamType
	case len(p.Arg) > 0 && isLowerASCII(p.Arg[0]):
		return protoir.ParamValue
	default:
		return protoir.ParamValueSet
	}
}

func isLowerASCII(c byte) bool { return c >= 'a' && c <= 'z' }

// isScalarExprType reports whether t is a non-constructed built-in
// type that maps directly to a scalar field.
func isScalarExprType(t astmodel.ExprType) bool {
	switch t {
	case astmodel.INTEGER, astmodel.BOOLEAN, astmodel.IA5String, astmodel.BMPString,
		astmodel.UTF8String, astmodel.TeletexString, astmodel.OBJECT_IDENTIFIER, astmodel.BIT_STRING:
		return true
	}
	return false
}

// scalarType maps a non-constructed ASN.1 expr type to its Protobuf
// field type and constraint domain.
func scalarType(t astmodel.ExprType) (protoType string, domain constraintgen.Domain) {
	switch t {
	case astmodel.INTEGER:
		return "int32", constraintgen.Int32Domain
	case astmodel.BOOLEAN:
		return "bool", constraintgen.Int32Domain
	case astmodel.IA5String, astmodel.BMPString, astmodel.UTF8String, astmodel.TeletexString:
		return "string", constraintgen.StringDomain
	case astmodel.OBJECT_IDENTIFIER:
		return "BasicOid", constraintgen.Int32Domain
	case astmodel.BIT_STRING:
		return "BitString", constraintgen.Int32Domain
	default:
		return "int32", constraintgen.Int32Domain
	}
}

// translateScalarType emits a one-field message wrapping a
// non-constructed scalar type, with an optional constraint rule.
func translateScalarType(pm *protoir.Module, expr *astmodel.Expr) {
	msg := newMessage(expr)
	protoType, domain := scalarType(expr.ExprType)

	field := &protoir.Field{Name: "value", Type: protoType}
	if expr.Constraint != nil {
		compiled := constraintgen.Compile(expr.Constraint, domain)
		if compiled != "" {
			field.Rules = fmt.Sprintf("%s = {%s}", protoType, compiled)
		}
	}
	msg.AppendField(field)
	pm.AppendMessage(msg)
}

// translateIntegerValueSet emits a one-field message whose rule
// restricts the value to the set's compiled constraint.
func translateIntegerValueSet(pm *protoir.Module, expr *astmodel.Expr) {
	msg := newMessage(expr)
	compiled := constraintgen.Compile(expr.Constraint, constraintgen.Int32Domain)
	field := &protoir.Field{
		Name:  "value",
		Type:  "int32",
		Rules: fmt.Sprintf("int32 = {in: [%s]}", compiled),
	}
	msg.AppendField(field)
	pm.AppendMessage(msg)
}
