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
	"github.com/tomikazi/asn1topb/identgen"
	"github.com/tomikazi/asn1topb/protoir"
	"github.com/tomikazi/asn1topb/util"
	"github.com/tomikazi/asn1topb/valuerender"
)

// expandIOCTable expands an expression whose value is unparsed but
// attached to a populated information-object-class table into one
// message, one field per cell with NewRef set.
func expandIOCTable(expr *astmodel.Expr) (*protoir.Message, util.Errors) {
	msg := newMessage(expr)
	var errs util.Errors

	for _, row := range expr.Table.Rows {
		for _, cell := range row.Cells {
			if !cell.NewRef {
				continue
			}
			field, err := iocField(expr.Identifier, cell)
			if err != nil {
				errs = util.AppendErr(errs, err)
				continue
			}
			msg.AppendField(field)
		}
	}
	return msg, errs
}

// iocField builds the single field for one IOC table cell: name is
// "<FieldName>-<CellValueIdentifier>", snake-cased here;
// type is int32 with a const rule for an integer cell value, else
// mapped from the ASN.1 identifier (INTEGER->int32, REAL->float, else
// verbatim).
func iocField(fieldName string, cell astmodel.Cell) (*protoir.Field, error) {
	name := fmt.Sprintf("%s-%s", fieldName, cell.Identifier)

	if cell.Value != nil && cell.Value.Kind == astmodel.VK_INTEGER {
		return &protoir.Field{
			Name:  identgen.LowerSnakeCase(name),
			Type:  "int32",
			Rules: fmt.Sprintf("int32.const = %s", valuerender.Render(cell.Value)),
		}, nil
	}

	fieldType := cell.Identifier
	switch cell.Identifier {
	case "INTEGER":
		fieldType = "int32"
	case "REAL":
		fieldType = "float"
	}
	return &protoir.Field{Name: identgen.LowerSnakeCase(name), Type: fieldType}, nil
}
