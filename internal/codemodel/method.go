package codemodel

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-cart-ecommerce/service-ts-gen/internal/diag"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/imports"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/typeres"
)

// Method is a class method. Service methods only get a signature; Lines and
// ReturnValue stay empty unless set by hand.
type Method struct {
	Name        string
	Arguments   []*Argument
	ReturnType  string
	ReturnValue string
	Lines       []string

	imports *imports.Registry
	env     Env
	// subject names the method in diagnostics.
	subject string
}

func newMethod(name string, reg *imports.Registry, env Env) *Method {
	return &Method{Name: name, imports: reg, env: env, subject: name}
}

func (m *Method) Imports() *imports.Registry {
	return m.imports
}

// AddArgument resolves the parameter type and appends the argument.
func (m *Method) AddArgument(p Parameter) *Argument {
	a := &Argument{
		Name:     p.Name,
		Type:     m.resolve(p.Schema),
		Required: p.Required,
		Default:  p.Default,
	}
	m.Arguments = append(m.Arguments, a)
	return a
}

// AddLine appends a body statement.
func (m *Method) AddLine(line string) {
	m.Lines = append(m.Lines, line)
}

// resolve resolves f against the file registry, reporting failures. The
// best-effort text is returned either way.
func (m *Method) resolve(f *typeres.Fragment) string {
	typ, err := m.env.Resolver.Resolve(f, m.imports)
	if err != nil {
		code := diag.CodeUnresolvedType
		if errors.Is(err, typeres.ErrBadReference) {
			code = diag.CodeBadReference
		}
		diag.Errorf(m.env.Reporter, code, m.subject, "%v", err)
	}
	return typ
}

// String renders the method block.
func (m *Method) String() string {
	args := m.Arguments
	if m.env.OptionalArguments {
		args = requiredFirst(args)
	}
	rendered := make([]string, 0, len(args))
	for _, a := range args {
		rendered = append(rendered, a.signature(m.env.OptionalArguments))
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s(%s): %s {\n", m.Name, strings.Join(rendered, ", "), m.ReturnType)
	for _, line := range m.Lines {
		buf.WriteString(indent + strings.TrimSuffix(line, ";") + ";\n")
	}
	fmt.Fprintf(&buf, "%sreturn %s;\n", indent, m.ReturnValue)
	buf.WriteString("}")
	return buf.String()
}

// requiredFirst moves optional arguments after required ones, keeping the
// relative order of each group.
func requiredFirst(args []*Argument) []*Argument {
	out := make([]*Argument, 0, len(args))
	for _, a := range args {
		if a.Required {
			out = append(out, a)
		}
	}
	for _, a := range args {
		if !a.Required {
			out = append(out, a)
		}
	}
	return out
}
