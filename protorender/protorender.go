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

// Package protorender implements the proto3-text renderer: it walks a
// protoir.Module in insertion order and writes the equivalent .proto
// source to an io.Writer.
//
// Every line is assembled in Go first; the package's only text/template
// (blockTmpl) receives a []string and lays those lines out.
package protorender

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	log "github.com/golang/glog"

	"github.com/tomikazi/asn1topb/identgen"
	"github.com/tomikazi/asn1topb/protoir"
)

const (
	// ToolName and ToolVersion populate the "Protobuf generated from ..."
	// comment line.
	ToolName    = "asn1topb"
	ToolVersion = "1.0.0"

	validateImportPath = "validate/v1/validate.proto"
)

// Options configures one render pass.
type Options struct {
	// NoIndent suppresses leading indentation on field lines.
	NoIndent bool

	// Free destructively consumes pm as it renders: each message's and
	// enum's field/def slice is nilled out immediately after emission,
	// bounding peak memory for large schemas. The module's own
	// top-level slices are left intact so the caller can still inspect
	// what was rendered.
	Free bool
}

// Render writes pm to w as proto3 source text.
func Render(w io.Writer, pm *protoir.Module, opts Options) error {
	indent := "    "
	if opts.NoIndent {
		indent = ""
	}

	if err := writeHeader(w, pm); err != nil {
		return err
	}

	for _, e := range pm.Enums {
		if err := writeEnum(w, e, indent); err != nil {
			return err
		}
		if opts.Free {
			e.Defs = nil
		}
	}

	for _, m := range pm.Messages {
		if err := writeMessage(w, m, indent); err != nil {
			return err
		}
		if opts.Free {
			m.Fields = nil
			m.Oneofs = nil
		}
	}

	return nil
}

// writeHeader emits the module comments, banner, generated-by line,
// syntax, package and import declarations.
func writeHeader(w io.Writer, pm *protoir.Module) error {
	for _, c := range pm.Comments {
		if _, err := fmt.Fprintf(w, "// %s\n", c); err != nil {
			return err
		}
	}

	modLC := identgen.LowerSnakeCase(pm.Name)
	if _, err := fmt.Fprintf(w, "////////////////////// %s.proto //////////////////////\n", modLC); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "// Protobuf generated from %s by %s-%s\n", pm.SourceFile, ToolName, ToolVersion); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "// %s%s\n\n", pm.Name, oidSuffix(pm.OID)); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "syntax = \"proto3\";\n\n"); err != nil {
		return err
	}

	pkg := packagePath(pm.SourceFile)
	if _, err := fmt.Fprintf(w, "package %s.v1;\n\n", pkg); err != nil {
		return err
	}

	for _, imp := range pm.Imports {
		impPkg := packagePath(imp.Path)
		fname := strings.ToLower(imp.Path)
		if _, err := fmt.Fprintf(w, "import \"%s/v1/%s.proto\";%s\n", impPkg, fname, oidComment(imp.OID)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "import \"%s\";\n\n", validateImportPath); err != nil {
		return err
	}
	return nil
}

// oidSuffix renders " { arc arc ... }" for a non-empty OID, or the
// empty string when oid is empty.
func oidSuffix(oid []int) string {
	if len(oid) == 0 {
		return ""
	}
	return " { " + joinOID(oid) + " }"
}

// oidComment renders " // { arc arc ... }" for a non-empty OID, or the
// empty string when oid is empty.
func oidComment(oid []int) string {
	if len(oid) == 0 {
		return ""
	}
	return " // { " + joinOID(oid) + " }"
}

func joinOID(oid []int) string {
	arcs := make([]string, len(oid))
	for i, a := range oid {
		arcs[i] = strconv.Itoa(a)
	}
	return strings.Join(arcs, " ")
}

// packagePath derives the proto package name from the module's source
// filename: strip the directory from src, snake-case what remains (folding
// any file extension's leading dot into an underscore like any other
// separator), and prefix the result with "pkg" if it does not start
// with a lowercase ASCII letter.
func packagePath(src string) string {
	base := filepath.Base(src)
	// LowerSnakeCase guards a leading digit with '_'; the package rule
	// instead wants the literal "pkg" prefix in front of the raw
	// snake-cased name, so strip that guard before applying the rule.
	name := identgen.LowerSnakeCase(base)
	if len(name) > 1 && name[0] == '_' && name[1] >= '0' && name[1] <= '9' {
		name = name[1:]
	}
	if name == "" || !isLowerStart(name) {
		name = "pkg" + name
	}
	return name
}

func isLowerStart(s string) bool {
	return s[0] >= 'a' && s[0] <= 'z'
}

// renderType applies message/enum-name casing to a field's type:
// Protobuf scalar keywords pass through verbatim;
// everything else is PascalCased to match the corresponding message or
// enum declaration's rendered name.
func renderType(t string) string {
	if protoir.ProtoScalars[t] {
		return t
	}
	return identgen.PascalCase(t)
}

// fieldLine renders one field declaration line.
func fieldLine(indent string, f *protoir.Field, ordinal int) string {
	var b strings.Builder
	b.WriteString(indent)
	if f.IsRepeated {
		b.WriteString("repeated ")
	}
	fmt.Fprintf(&b, "%s %s = %d", renderType(f.Type), identgen.LowerSnakeCase(f.Name), ordinal)
	if f.Rules != "" {
		fmt.Fprintf(&b, " [(validate.v1.rules).%s]", f.Rules)
	}
	b.WriteString(";")
	for _, c := range f.Comments {
		fmt.Fprintf(&b, " // %s", c)
	}
	return b.String()
}

// fieldLines renders fields starting at ordinal start, returning the
// next unused ordinal alongside the rendered lines so a caller can
// continue numbering across a message's fields and its oneofs' fields.
func fieldLines(indent string, fields []*protoir.Field, start int) ([]string, int) {
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = fieldLine(indent, f, start+i)
	}
	return lines, start + len(fields)
}

// blockTmpl renders a pre-assembled slice of complete lines, one per
// line, followed by a single trailing blank line so every top-level
// entity is separated from the next. All the casing, indentation and
// punctuation decisions happen in Go before the lines reach the
// template; the template itself only lays them out.
var blockTmpl = template.Must(template.New("block").Parse(
	`{{ range . }}{{ . }}
{{ end }}
`))

func writeBlock(w io.Writer, lines []string) error {
	return blockTmpl.Execute(w, lines)
}

func writeMessage(w io.Writer, m *protoir.Message, indent string) error {
	var lines []string
	for _, c := range m.Comments {
		lines = append(lines, "// "+c)
	}
	lines = append(lines, fmt.Sprintf("message %s {", identgen.PascalCase(m.Name)))
	fieldLns, ordinal := fieldLines(indent, m.Fields, 1)
	lines = append(lines, fieldLns...)
	for _, o := range m.Oneofs {
		lines = append(lines, fmt.Sprintf("%soneof %s {", indent, identgen.LowerSnakeCase(o.Name)))
		var oneofLns []string
		oneofLns, ordinal = fieldLines(indent+indent, o.Fields, ordinal)
		lines = append(lines, oneofLns...)
		lines = append(lines, indent+"}")
	}
	lines = append(lines, "};")
	return writeBlock(w, lines)
}

// writeEnum renders one enum block, guaranteeing a zero-valued member
// and assigning auto indices from a running counter that explicit
// indices do not advance.
func writeEnum(w io.Writer, e *protoir.Enum, indent string) error {
	name := identgen.PascalCase(e.Name)
	nameUC := identgen.ScreamingSnakeCase(e.Name)

	hasExplicitZero := false
	for _, d := range e.Defs {
		if d.Index != protoir.AutoIndex && d.Index == 0 {
			hasExplicitZero = true
			break
		}
	}

	var lines []string
	for _, c := range e.Comments {
		lines = append(lines, "// "+c)
	}
	lines = append(lines, fmt.Sprintf("enum %s {", name))

	seen := map[int]bool{}
	if !hasExplicitZero {
		lines = append(lines, fmt.Sprintf("%s%s_UNDEFINED = 0; // auto generated", indent, nameUC))
		seen[0] = true
	}

	counter := 0
	for _, d := range e.Defs {
		idx := d.Index
		if idx == protoir.AutoIndex {
			idx = counter
			counter++
		}
		if seen[idx] {
			log.Warningf("asn1topb: enum %s: value %d assigned to both an earlier def and %q", e.Name, idx, d.Name)
		}
		seen[idx] = true
		lines = append(lines, fmt.Sprintf("%s%s_%s = %d;", indent, nameUC, identgen.ScreamingSnakeCase(d.Name), idx))
	}
	lines = append(lines, "}")

	return writeBlock(w, lines)
}
