package document

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/go-openapi/jsonpointer"

	"github.com/go-cart-ecommerce/service-ts-gen/internal/codemodel"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/diag"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/typeres"
)

const (
	parametersPrefix = "#/parameters/"
	responsesPrefix  = "#/responses/"
	successStatus    = "200"
)

// Operation returns the descriptor of the operation at path and method, or
// false when there is none. Path-level parameters come first; an operation
// parameter with the same name and location replaces its path-level
// counterpart. Parameter and response references that cannot be followed
// are reported to r and skipped.
func (d *Document) Operation(path, method string, r diag.Reporter) (codemodel.Operation, bool) {
	if r == nil {
		r = diag.Nop{}
	}
	item := d.Spec.Paths[path]
	if item == nil {
		return codemodel.Operation{}, false
	}
	op := item.Operations()[strings.ToUpper(method)]
	if op == nil {
		return codemodel.Operation{}, false
	}

	subject := op.OperationID
	if subject == "" {
		subject = strings.ToUpper(method) + " " + path
	}

	out := codemodel.Operation{
		OperationID: op.OperationID,
		Summary:     op.Summary,
		Tags:        op.Tags,
	}

	index := make(map[string]int)
	add := func(params openapi2.Parameters) {
		for _, p := range params {
			resolved := d.parameter(p, subject, r)
			if resolved == nil {
				continue
			}
			param := codemodel.Parameter{
				Name:     resolved.Name,
				In:       resolved.In,
				Required: resolved.Required,
				Default:  resolved.Default,
				Schema:   typeres.FromParameter(resolved),
			}
			key := resolved.In + ":" + resolved.Name
			if i, ok := index[key]; ok {
				out.Parameters[i] = param
				continue
			}
			index[key] = len(out.Parameters)
			out.Parameters = append(out.Parameters, param)
		}
	}
	add(item.Parameters)
	add(op.Parameters)

	if resp := d.response(op.Responses[successStatus], subject, r); resp != nil && resp.Schema != nil {
		out.Success = typeres.FromSchemaRef(resp.Schema)
	}
	return out, true
}

func (d *Document) parameter(p *openapi2.Parameter, subject string, r diag.Reporter) *openapi2.Parameter {
	if p == nil || p.Ref == "" {
		return p
	}
	var target *openapi2.Parameter
	if err := lookup(d, p.Ref, parametersPrefix, &target); err != nil {
		diag.Warnf(r, diag.CodeBadComponentRef, subject, "parameter skipped: %v", err)
		return nil
	}
	return target
}

func (d *Document) response(resp *openapi2.Response, subject string, r diag.Reporter) *openapi2.Response {
	if resp == nil || resp.Ref == "" {
		return resp
	}
	var target *openapi2.Response
	if err := lookup(d, resp.Ref, responsesPrefix, &target); err != nil {
		diag.Warnf(r, diag.CodeBadComponentRef, subject, "response schema skipped: %v", err)
		return nil
	}
	return target
}

// lookup follows a local reference under prefix and stores the target in out.
func lookup[T any](d *Document, ref, prefix string, out **T) error {
	if !strings.HasPrefix(ref, prefix) {
		return fmt.Errorf("unsupported reference %q", ref)
	}
	ptr, err := jsonpointer.New(strings.TrimPrefix(ref, "#"))
	if err != nil {
		return fmt.Errorf("invalid reference %q: %w", ref, err)
	}
	value, _, err := ptr.Get(d.Spec)
	if err != nil {
		return fmt.Errorf("reference %q not found: %w", ref, err)
	}
	target, ok := value.(*T)
	if !ok || target == nil {
		return fmt.Errorf("reference %q does not point to a %T", ref, *out)
	}
	*out = target
	return nil
}
