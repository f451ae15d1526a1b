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
	"github.com/tomikazi/asn1topb/protoir"
)

// buildEnum turns an ENUMERATED expression into a ProtoEnum, one
// EnumDef per UNIVERVAL member.
func buildEnum(expr *astmodel.Expr) *protoir.Enum {
	e := &protoir.Enum{
		Name:     expr.Identifier,
		Comments: []string{fmt.Sprintf("enumerated from %s:%d", expr.Source, expr.Line)},
	}
	for _, member := range expr.Members {
		idx := protoir.AutoIndex
		if member.Value != nil && member.Value.Kind == astmodel.VK_INTEGER && member.Value.Int >= 0 {
			idx = int(member.Value.Int)
		}
		e.AppendDef(&protoir.EnumDef{Name: member.Identifier, Index: idx})
	}
	return e
}
