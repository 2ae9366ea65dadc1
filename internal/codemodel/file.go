// Package codemodel is the in-memory object graph of a generated file:
// File owns Classes, Class owns Methods, Method owns Arguments. All nodes of
// one File share the File's import registry.
package codemodel

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/go-cart-ecommerce/service-ts-gen/internal/imports"
)

const indent = "  "

// Part is a piece of a file that renders to text and records its imports in
// the file's registry.
type Part interface {
	fmt.Stringer
	Imports() *imports.Registry
}

var (
	_ Part = (*Class)(nil)
	_ Part = (*Method)(nil)
)

// File is one output compilation unit.
type File struct {
	Name    string
	Exports []string
	Imports *imports.Registry
	Classes []*Class

	env Env
}

// NewFile creates an empty file with its own import registry.
func NewFile(name string, env Env) *File {
	return &File{
		Name:    name,
		Imports: imports.NewRegistry(),
		env:     env.withDefaults(),
	}
}

// CreateClass appends an exported class bound to the file's registry.
func (f *File) CreateClass(name string) *Class {
	c := newClass(name, f.Imports, f.env)
	f.Classes = append(f.Classes, c)
	f.Exports = append(f.Exports, name)
	return c
}

// Render returns the complete source text: imports followed by classes.
func (f *File) Render() string {
	var buf bytes.Buffer
	buf.WriteString("// Auto-generated TypeScript service\n")
	buf.WriteString("// Do not modify manually.\n\n")

	if statements := f.Imports.Render(); len(statements) > 0 {
		buf.WriteString(strings.Join(statements, "\n"))
		buf.WriteString("\n\n")
	}

	for i, c := range f.Classes {
		if i > 0 {
			buf.WriteString("\n")
		}
		if slices.Contains(f.Exports, c.Name) {
			buf.WriteString("export ")
		}
		buf.WriteString(c.String())
		buf.WriteString("\n")
	}
	return buf.String()
}

// indentBlock prefixes every non-empty line of s with one indent level.
func indentBlock(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}
