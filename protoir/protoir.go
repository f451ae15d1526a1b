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

// Package protoir defines the Protobuf intermediate representation that
// the translate package builds and the protorender package consumes.
// Every container preserves insertion order: callers
// should never need to sort these slices before rendering.
package protoir

// ProtoScalars is the set of Protobuf scalar type keywords that are
// emitted verbatim rather than PascalCased.
var ProtoScalars = map[string]bool{
	"bool": true, "int32": true, "int64": true, "uint32": true,
	"uint64": true, "float": true, "double": true, "string": true,
	"bytes": true,
}

// Module is the root IR node for one ASN.1 module's translation.
type Module struct {
	Name       string
	SourceFile string
	OID        []int

	Comments []string

	Imports  []*Import
	Enums    []*Enum
	Messages []*Message
}

// AppendImport appends imp to m's import list if no import with the
// same Path is already present.
func (m *Module) AppendImport(imp *Import) {
	for _, existing := range m.Imports {
		if existing.Path == imp.Path {
			return
		}
	}
	m.Imports = append(m.Imports, imp)
}

// AppendEnum appends e to m's enum list.
func (m *Module) AppendEnum(e *Enum) {
	m.Enums = append(m.Enums, e)
}

// AppendMessage appends msg to m's message list.
func (m *Module) AppendMessage(msg *Message) {
	m.Messages = append(m.Messages, msg)
}

// Import is a single proto import declaration.
type Import struct {
	Path string
	OID  []int
}

// Enum is a top-level (or, in principle, nested) enum declaration.
type Enum struct {
	Name     string
	Comments []string
	Defs     []*EnumDef
}

// AppendDef appends d to e's definition list.
func (e *Enum) AppendDef(d *EnumDef) {
	e.Defs = append(e.Defs, d)
}

// AutoIndex is the sentinel EnumDef.Index value meaning "assign the
// next value from the render-time running counter".
const AutoIndex = -1

// EnumDef is a single named value within an Enum.
type EnumDef struct {
	Name  string
	Index int // explicit index (>= 0), or AutoIndex
}

// Message is a Protobuf message declaration.
type Message struct {
	Name       string
	SpecIndex  int
	UniqueID   int
	Comments   []string
	Fields     []*Field
	Oneofs     []*Oneof
	Parameters []*Param
}

// AppendField appends f to m's field list.
func (m *Message) AppendField(f *Field) {
	m.Fields = append(m.Fields, f)
}

// AppendOneof appends o to m's oneof list.
func (m *Message) AppendOneof(o *Oneof) {
	m.Oneofs = append(m.Oneofs, o)
}

// Field is a single Protobuf message or oneof field. Ordinals are not
// stored here: they are assigned at render time, in insertion order.
type Field struct {
	Name       string
	Type       string
	IsRepeated bool
	Rules      string
	Comments   []string
}

// Oneof is a Protobuf oneof block. Its field ordinals continue the
// parent message's numbering at render time.
type Oneof struct {
	Name     string
	Comments []string
	Fields   []*Field
}

// AppendField appends f to o's field list.
func (o *Oneof) AppendField(f *Field) {
	o.Fields = append(o.Fields, f)
}

// ParamKind mirrors astmodel.ParamKind for the IR's own surfaced
// representation. Reserved for future generics; currently surfaced as
// comments only.
type ParamKind string

const (
	ParamType     ParamKind = "TYPE"
	ParamValue    ParamKind = "VALUE"
	ParamValueSet ParamKind = "VALUE_SET"
)

// Param is a formal parameter attached to a Message.
type Param struct {
	Name string
	Kind ParamKind
}
