// Copyright 2026 Merkle Light Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
)

type options struct {
	// pkg overrides the output package name; empty keeps the input's.
	pkg string
	// types restricts generation to the named structs; empty means all.
	types []string
}

type structDecl struct {
	name string
	typ  *ast.StructType
}

// generate parses src and returns a gofmt-formatted source file
// containing a HashInto method for every selected struct.
func generate(src []byte, filename string, opts options) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	structs, err := selectStructs(file, opts.types)
	if err != nil {
		return nil, err
	}

	pkg := file.Name.Name
	if opts.pkg != "" {
		pkg = opts.pkg
	}

	var methods bytes.Buffer
	usesHashing := false
	for _, s := range structs {
		stmts, uses, err := fieldStmts(s)
		if err != nil {
			return nil, err
		}
		usesHashing = usesHashing || uses

		fmt.Fprintf(&methods, "\n// HashInto feeds each field of %s, in declaration order, into state.\n", s.name)
		fmt.Fprintf(&methods, "func (x %s) HashInto(state hash.Hash) {\n", s.name)
		for _, stmt := range stmts {
			fmt.Fprintf(&methods, "\t%s\n", stmt)
		}
		methods.WriteString("}\n")
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by hashablegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	if usesHashing {
		buf.WriteString("import (\n\t\"hash\"\n\n\t\"github.com/merklelight/merkle/hashing\"\n)\n")
	} else {
		buf.WriteString("import \"hash\"\n")
	}
	buf.Write(methods.Bytes())

	return format.Source(buf.Bytes())
}

// selectStructs returns the struct declarations of file, in source
// order, restricted to the requested names if any.
func selectStructs(file *ast.File, names []string) ([]structDecl, error) {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var structs []structDecl
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}
			if len(wanted) > 0 && !wanted[ts.Name.Name] {
				continue
			}
			delete(wanted, ts.Name.Name)
			structs = append(structs, structDecl{name: ts.Name.Name, typ: st})
		}
	}

	if len(wanted) > 0 {
		for name := range wanted {
			return nil, fmt.Errorf("no struct type %q in input", name)
		}
	}
	if len(structs) == 0 {
		return nil, fmt.Errorf("no struct types selected")
	}
	return structs, nil
}

// fieldStmts returns one statement per field of s, in declaration
// order, and reports whether any of them references the hashing
// package.
func fieldStmts(s structDecl) ([]string, bool, error) {
	var stmts []string
	usesHashing := false
	for _, field := range s.typ.Fields.List {
		names := make([]string, 0, 1)
		for _, n := range field.Names {
			names = append(names, n.Name)
		}
		if len(names) == 0 {
			// Embedded field: hash through the promoted type name.
			name, err := embeddedName(field.Type)
			if err != nil {
				return nil, false, fmt.Errorf("%s: %v", s.name, err)
			}
			names = append(names, name)
		}
		for _, name := range names {
			stmt, uses, err := fieldStmt(name, field.Type)
			if err != nil {
				return nil, false, fmt.Errorf("%s.%s: %v", s.name, name, err)
			}
			usesHashing = usesHashing || uses
			stmts = append(stmts, stmt)
		}
	}
	return stmts, usesHashing, nil
}

// fieldStmt maps one field to the statement that feeds it into state.
func fieldStmt(name string, typ ast.Expr) (string, bool, error) {
	switch t := typ.(type) {
	case *ast.Ident:
		switch t.Name {
		case "bool":
			return fmt.Sprintf("hashing.Bool(x.%s).HashInto(state)", name), true, nil
		case "uint8", "byte":
			return fmt.Sprintf("hashing.Uint8(x.%s).HashInto(state)", name), true, nil
		case "uint16":
			return fmt.Sprintf("hashing.Uint16(x.%s).HashInto(state)", name), true, nil
		case "uint32":
			return fmt.Sprintf("hashing.Uint32(x.%s).HashInto(state)", name), true, nil
		case "uint64":
			return fmt.Sprintf("hashing.Uint64(x.%s).HashInto(state)", name), true, nil
		case "string":
			return fmt.Sprintf("hashing.String(x.%s).HashInto(state)", name), true, nil
		case "int", "int8", "int16", "int32", "int64", "uint", "uintptr",
			"float32", "float64", "complex64", "complex128", "rune", "error", "any":
			return "", false, fmt.Errorf("no canonical encoding for %s", t.Name)
		default:
			// A named type; assume it is Hashable.
			return fmt.Sprintf("x.%s.HashInto(state)", name), false, nil
		}
	case *ast.SelectorExpr:
		return fmt.Sprintf("x.%s.HashInto(state)", name), false, nil
	case *ast.ArrayType:
		if t.Len != nil {
			return "", false, fmt.Errorf("fixed-size arrays are not supported; use a slice or a named Hashable type")
		}
		if id, ok := t.Elt.(*ast.Ident); ok && (id.Name == "byte" || id.Name == "uint8") {
			return fmt.Sprintf("hashing.Bytes(x.%s).HashInto(state)", name), true, nil
		}
		return fmt.Sprintf("hashing.HashSlice(x.%s, state)", name), true, nil
	default:
		return "", false, fmt.Errorf("cannot derive hashing for field type %T", typ)
	}
}

// embeddedName returns the promoted field name of an embedded type.
func embeddedName(typ ast.Expr) (string, error) {
	switch t := typ.(type) {
	case *ast.Ident:
		return t.Name, nil
	case *ast.SelectorExpr:
		return t.Sel.Name, nil
	default:
		return "", fmt.Errorf("cannot derive hashing for embedded field of type %T", typ)
	}
}
