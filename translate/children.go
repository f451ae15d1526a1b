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

package translate

import (
	"fmt"

	"github.com/tomikazi/asn1topb/astmodel"
	"github.com/tomikazi/asn1topb/constraintgen"
	"github.com/tomikazi/asn1topb/protoir"
	"github.com/tomikazi/asn1topb/util"
)

// processChildren builds fields for expr's members and appends them to
// msg. outerRepeated is true when expr itself is a SEQUENCE OF, in
// which case the repeated flag is applied to all child fields.
func processChildren(msg *protoir.Message, expr *astmodel.Expr, st astmodel.SymbolTable, outerRepeated bool) util.Errors {
	fields, errs := buildChildFields(expr, st, outerRepeated)
	for _, f := range fields {
		msg.AppendField(f)
	}
	return errs
}

// buildChildFields maps each child member to a field, shared between
// SEQUENCE/SEQUENCE OF processing and CHOICE's oneof entries.
func buildChildFields(expr *astmodel.Expr, st astmodel.SymbolTable, outerRepeated bool) ([]*protoir.Field, util.Errors) {
	var fields []*protoir.Field
	var errs util.Errors

	for _, child := range expr.Members {
		switch child.ExprType {
		case astmodel.UNIVERVAL:
			continue // skipped entirely

		case astmodel.EXTENSIBLE:
			continue // skipped; noted

		case astmodel.BIT_STRING:
			fields = append(fields, &protoir.Field{Name: child.Identifier, Type: "BitString", IsRepeated: outerRepeated})

		case astmodel.OBJECT_IDENTIFIER:
			fields = append(fields, &protoir.Field{Name: child.Identifier, Type: "BasicOid", IsRepeated: outerRepeated})

		case astmodel.BOOLEAN:
			fields = append(fields, &protoir.Field{Name: child.Identifier, Type: "bool", IsRepeated: outerRepeated})

		case astmodel.UTF8String, astmodel.TeletexString:
			f := &protoir.Field{Name: child.Identifier, Type: "string", IsRepeated: outerRepeated}
			if child.Constraint != nil {
				if compiled := constraintgen.Compile(child.Constraint, constraintgen.StringDomain); compiled != "" {
					f.Rules = fmt.Sprintf("string = {%s}", compiled)
				}
			}
			fields = append(fields, f)

		case astmodel.SEQUENCE_OF:
			fields = append(fields, &protoir.Field{
				Name:       child.Identifier,
				Type:       sequenceOfElementType(child),
				IsRepeated: true,
			})

		case astmodel.REFERENCE:
			name, err := referenceFieldType(child)
			if err != nil {
				errs = util.AppendErr(errs, err)
				continue
			}
			fields = append(fields, &protoir.Field{Name: child.Identifier, Type: name, IsRepeated: outerRepeated})

		default:
			fields = append(fields, &protoir.Field{Name: child.Identifier, Type: "int32", IsRepeated: outerRepeated})
		}
	}
	return fields, errs
}

// referenceFieldType maps a REFERENCE child to a field type: a
// 1-component reference resolves to that component's name; a
// 2-component reference (module.type) resolves to the second
// component.
func referenceFieldType(child *astmodel.Expr) (string, error) {
	if child.Reference == nil || len(child.Reference.Components) == 0 {
		return "", fmt.Errorf("REFERENCE child %q at %s:%d has no reference components", child.Identifier, child.Source, child.Line)
	}
	c := child.Reference.Components
	switch len(c) {
	case 1:
		return c[0], nil
	default:
		return c[1], nil
	}
}

// sequenceOfElementType implements "SEQUENCE OF -> first child's
// referenced name": the element type is the first (and only) member of
// the SEQUENCE OF expression.
func sequenceOfElementType(seqOf *astmodel.Expr) string {
	if len(seqOf.Members) == 0 {
		return "int32"
	}
	elem := seqOf.Members[0]
	if name, err := referenceFieldType(elem); err == nil {
		return name
	}
	return elem.Identifier
}
