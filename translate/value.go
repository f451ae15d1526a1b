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

	log "github.com/golang/glog"

	"github.com/tomikazi/asn1topb/astmodel"
	"github.com/tomikazi/asn1topb/identgen"
	"github.com/tomikazi/asn1topb/protoir"
	"github.com/tomikazi/asn1topb/util"
	"github.com/tomikazi/asn1topb/valuerender"
)

// translateValue turns an AMT_VALUE expression into a one-field
// message with a constant-value rule.
func translateValue(pm *protoir.Module, expr *astmodel.Expr, st astmodel.SymbolTable) util.Errors {
	msg := newMessage(expr)

	switch expr.ExprType {
	case astmodel.INTEGER:
		msg.AppendField(intConstField(expr.Value))
		pm.AppendMessage(msg)
		return nil

	case astmodel.REFERENCE:
		return translateReferenceValue(pm, msg, expr, st)

	default:
		msg.Comments = append(msg.Comments, "Error.")
		log.Errorf("asn1topb: unhandled AMT_VALUE expr type %s at %s:%d", expr.ExprType, expr.Source, expr.Line)
		pm.AppendMessage(msg)
		return util.NewErrs(fmt.Errorf("unhandled value type %s at %s:%d", expr.ExprType, expr.Source, expr.Line))
	}
}

func translateReferenceValue(pm *protoir.Module, msg *protoir.Message, expr *astmodel.Expr, st astmodel.SymbolTable) util.Errors {
	v := expr.Value
	if v == nil {
		msg.Comments = append(msg.Comments, "Error.")
		pm.AppendMessage(msg)
		return util.NewErrs(fmt.Errorf("REFERENCE value %s at %s:%d has no value", expr.Identifier, expr.Source, expr.Line))
	}

	switch v.Kind {
	case astmodel.VK_INTEGER:
		msg.AppendField(intConstField(v))
		pm.AppendMessage(msg)
		return nil

	case astmodel.VK_STRING:
		msg.AppendField(&protoir.Field{
			Name:  "value",
			Type:  "string",
			Rules: fmt.Sprintf("string.const = %s", valuerender.Render(v)),
		})
		pm.AppendMessage(msg)
		return nil

	case astmodel.VK_UNPARSED:
		if expr.Table != nil {
			iocMsg, errs := expandIOCTable(expr)
			pm.AppendMessage(iocMsg)
			return errs
		}
		fallthrough

	default:
		msg.Comments = append(msg.Comments, "Error.")
		log.Errorf("asn1topb: unhandled REFERENCE value kind %s at %s:%d", v.Kind, expr.Source, expr.Line)
		pm.AppendMessage(msg)
		return util.NewErrs(fmt.Errorf("unhandled REFERENCE value kind %s at %s:%d", v.Kind, expr.Source, expr.Line))
	}
}

func intConstField(v *astmodel.Value) *protoir.Field {
	return &protoir.Field{
		Name:  "value",
		Type:  "int32",
		Rules: fmt.Sprintf("int32.const = %s", valuerender.Render(v)),
	}
}

// translateTyperef emits a one-field message whose type names the
// terminal type the reference chain resolves to, suffixed with that
// type's three-digit unique index.
func translateTyperef(pm *protoir.Module, expr *astmodel.Expr, st astmodel.SymbolTable) util.Errors {
	terminal, err := astmodel.ResolveTerminalType(st, expr)
	if err != nil {
		log.Errorf("asn1topb: %v", err)
		return util.NewErrs(err)
	}

	msg := newMessage(expr)
	typeName := fmt.Sprintf("%s%03d", identgen.PascalCase(terminal.Identifier), terminal.Index%1000)
	msg.AppendField(&protoir.Field{Name: "value", Type: typeName})
	pm.AppendMessage(msg)
	return nil
}
