// Package typeres maps schema fragments to TypeScript type expressions.
package typeres

import (
	"errors"
	"fmt"

	"github.com/go-cart-ecommerce/service-ts-gen/internal/imports"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/naming"
)

var (
	// ErrUnresolved is returned when a fragment matches none of the known shapes.
	ErrUnresolved = errors.New("unresolvable type")
	// ErrBadReference is returned for a $ref that is not a #/definitions/ pointer.
	ErrBadReference = errors.New("unparseable reference")
)

// Options are the names the resolver emits for types that do not come from
// the document.
type Options struct {
	// RepositoryModule is the module every referenced definition is imported from.
	RepositoryModule string
	// FileType is emitted for type: file.
	FileType string
	// DynamicType is emitted for objects without a value schema.
	DynamicType string
}

// DefaultOptions returns the conventional names.
func DefaultOptions() Options {
	return Options{
		RepositoryModule: "@private/repository",
		FileType:         "FormData",
		DynamicType:      "any",
	}
}

// Resolver resolves fragments. It holds no per-file state, so one Resolver
// can serve every file of a run.
type Resolver struct {
	opts Options
}

func New(opts Options) *Resolver {
	def := DefaultOptions()
	if opts.RepositoryModule == "" {
		opts.RepositoryModule = def.RepositoryModule
	}
	if opts.FileType == "" {
		opts.FileType = def.FileType
	}
	if opts.DynamicType == "" {
		opts.DynamicType = def.DynamicType
	}
	return &Resolver{opts: opts}
}

// Options returns the effective options.
func (r *Resolver) Options() Options {
	return r.opts
}

// Resolve returns the type expression for f and records any referenced
// definition in reg.
//
// The returned text is always the best-effort expression: "" when nothing
// matched, "[]" for an array whose items could not be resolved. A non-nil
// error wraps ErrUnresolved or ErrBadReference and describes the part that
// failed; callers report it and keep going.
func (r *Resolver) Resolve(f *Fragment, reg *imports.Registry) (string, error) {
	var (
		converted string
		err       error
	)

	switch {
	case f == nil:
	case f.Type != "":
		converted, err = r.resolveTyped(f, reg)
	case f.Schema != nil:
		converted, err = r.Resolve(f.Schema, reg)
	}

	if converted != "" {
		return converted, err
	}
	if f != nil && f.Ref != "" {
		return r.resolveRef(f.Ref, reg)
	}
	if err != nil {
		return "", err
	}
	return "", fmt.Errorf("%w: %s", ErrUnresolved, f)
}

func (r *Resolver) resolveTyped(f *Fragment, reg *imports.Registry) (string, error) {
	switch f.Type {
	case "string", "boolean":
		return f.Type, nil
	case "number", "integer":
		return "number", nil
	case "file":
		return r.opts.FileType, nil
	case "array":
		inner, err := r.Resolve(f.Items, reg)
		return inner + "[]", err
	case "object":
		if f.AdditionalProperties != nil {
			return r.Resolve(f.AdditionalProperties, reg)
		}
		return r.opts.DynamicType, nil
	}
	return "", nil
}

func (r *Resolver) resolveRef(ref string, reg *imports.Registry) (string, error) {
	name, err := naming.DefinitionName(ref)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrBadReference, ref)
	}

	// Wrapper names are kept whole: Page«Widget» stays Page«Widget».
	converted := name
	if w, ok := naming.MatchWrapper(name); ok {
		converted = w.Full
	}
	reg.Record(converted, r.opts.RepositoryModule)
	return converted, nil
}
