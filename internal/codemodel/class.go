package codemodel

import (
	"bytes"
	"fmt"

	"github.com/go-cart-ecommerce/service-ts-gen/internal/diag"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/imports"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/naming"
)

// Class is a generated service class.
type Class struct {
	Name    string
	Methods []*Method

	imports *imports.Registry
	env     Env
}

func newClass(name string, reg *imports.Registry, env Env) *Class {
	return &Class{Name: name, imports: reg, env: env}
}

func (c *Class) Imports() *imports.Registry {
	return c.imports
}

// AddMethod appends an empty method.
func (c *Class) AddMethod(name string) *Method {
	m := newMethod(name, c.imports, c.env)
	c.Methods = append(c.Methods, m)
	return m
}

// AddServiceMethod builds a method signature from an API operation and
// appends it. Problems with names or types are reported to the file's
// reporter; the method is added regardless.
func (c *Class) AddServiceMethod(op Operation) *Method {
	m := newMethod(op.Summary, c.imports, c.env)
	m.subject = op.OperationID

	for _, p := range op.Parameters {
		m.AddArgument(p)
	}

	if name, err := naming.MethodName(op.OperationID); err == nil {
		m.Name = name
	} else {
		diag.Warnf(c.env.Reporter, diag.CodeBadOperationID, op.OperationID,
			"could not find method name in operation id %q, using %q", op.OperationID, m.Name)
	}

	if op.Success != nil {
		m.ReturnType = m.resolve(op.Success)
	} else {
		m.ReturnType = c.env.VoidType
	}

	c.Methods = append(c.Methods, m)
	return m
}

// String renders the class without the export keyword, which belongs to the
// file.
func (c *Class) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "class %s {\n", c.Name)
	for i, m := range c.Methods {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(indentBlock(m.String()))
		buf.WriteString("\n")
	}
	buf.WriteString("}")
	return buf.String()
}
