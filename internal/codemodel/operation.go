package codemodel

import (
	"github.com/go-cart-ecommerce/service-ts-gen/internal/diag"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/imports"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/typeres"
)

// Operation is the part of an API operation the code model needs to build a
// service method.
type Operation struct {
	OperationID string
	Summary     string
	Tags        []string
	Parameters  []Parameter
	// Success is the schema of the 200 response, nil when there is none.
	Success *typeres.Fragment
}

// Parameter is one operation parameter. Schema describes the parameter
// itself: inline type/items for simple parameters, a nested schema for body
// parameters.
type Parameter struct {
	Name     string
	In       string
	Required bool
	Default  any
	Schema   *typeres.Fragment
}

// Resolver turns schema fragments into type expressions, recording the
// imports they need in reg.
type Resolver interface {
	Resolve(f *typeres.Fragment, reg *imports.Registry) (string, error)
}

// Env is shared by every node of a file.
type Env struct {
	Resolver Resolver
	Reporter diag.Reporter
	// VoidType is the return type of operations without a 200 schema.
	VoidType string
	// OptionalArguments renders non-required arguments as optional.
	OptionalArguments bool
}

func (e Env) withDefaults() Env {
	if e.Resolver == nil {
		e.Resolver = typeres.New(typeres.DefaultOptions())
	}
	if e.Reporter == nil {
		e.Reporter = diag.Nop{}
	}
	if e.VoidType == "" {
		e.VoidType = "void"
	}
	return e
}
