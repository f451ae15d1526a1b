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

package protoir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestModuleAppendImportDedups(t *testing.T) {
	m := &Module{}
	m.AppendImport(&Import{Path: "a/v1/a.proto"})
	m.AppendImport(&Import{Path: "b/v1/b.proto"})
	m.AppendImport(&Import{Path: "a/v1/a.proto"})

	want := []string{"a/v1/a.proto", "b/v1/b.proto"}
	var got []string
	for _, imp := range m.Imports {
		got = append(got, imp.Path)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Imports mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	msg := &Message{Name: "Point"}
	msg.AppendField(&Field{Name: "x", Type: "int32"})
	msg.AppendField(&Field{Name: "y", Type: "int32"})
	msg.AppendField(&Field{Name: "label", Type: "string"})

	var names []string
	for _, f := range msg.Fields {
		names = append(names, f.Name)
	}
	want := []string{"x", "y", "label"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestOneofAppendField(t *testing.T) {
	o := &Oneof{Name: "result"}
	o.AppendField(&Field{Name: "ok", Type: "int32"})
	o.AppendField(&Field{Name: "err", Type: "string"})

	if len(o.Fields) != 2 {
		t.Fatalf("len(o.Fields) = %d, want 2", len(o.Fields))
	}
}

func TestProtoScalars(t *testing.T) {
	for _, s := range []string{"bool", "int32", "int64", "uint32", "uint64", "float", "double", "string", "bytes"} {
		if !ProtoScalars[s] {
			t.Errorf("ProtoScalars[%q] = false, want true", s)
		}
	}
	if ProtoScalars["MyMessage"] {
		t.Errorf("ProtoScalars[%q] = true, want false", "MyMessage")
	}
}
