package typeres

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi3"
)

// Fragment is a library-agnostic view of the parts of a schema (or of a
// parameter, which carries its type inline) that type resolution looks at.
type Fragment struct {
	Type  string
	Items *Fragment
	// AdditionalProperties is the value schema of a map-like object.
	AdditionalProperties *Fragment
	// AnyAdditional is set for additionalProperties: true.
	AnyAdditional bool
	// Schema is the nested schema of a body parameter.
	Schema *Fragment
	Ref    string
}

// String renders a compact description used in diagnostics.
func (f *Fragment) String() string {
	if f == nil {
		return "<nil>"
	}
	var parts []string
	if f.Type != "" {
		parts = append(parts, "type: "+f.Type)
	}
	if f.Items != nil {
		parts = append(parts, "items: "+f.Items.String())
	}
	if f.AdditionalProperties != nil {
		parts = append(parts, "additionalProperties: "+f.AdditionalProperties.String())
	}
	if f.AnyAdditional {
		parts = append(parts, "additionalProperties: true")
	}
	if f.Schema != nil {
		parts = append(parts, "schema: "+f.Schema.String())
	}
	if f.Ref != "" {
		parts = append(parts, fmt.Sprintf("$ref: %q", f.Ref))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FromSchemaRef adapts a Swagger 2.0 schema or reference.
func FromSchemaRef(ref *openapi2.SchemaRef) *Fragment {
	if ref == nil {
		return nil
	}
	if ref.Ref != "" {
		return &Fragment{Ref: ref.Ref}
	}
	s := ref.Value
	if s == nil {
		return &Fragment{}
	}
	f := &Fragment{
		Type:  primaryType(s.Type),
		Items: FromSchemaRef(s.Items),
	}
	applyAdditional(f, s.AdditionalProperties)
	return f
}

// FromSchema3Ref adapts an OpenAPI 3 schema or reference. Swagger 2.0
// documents decoded by kin-openapi use these for additionalProperties.
func FromSchema3Ref(ref *openapi3.SchemaRef) *Fragment {
	if ref == nil {
		return nil
	}
	if ref.Ref != "" {
		return &Fragment{Ref: ref.Ref}
	}
	s := ref.Value
	if s == nil {
		return &Fragment{}
	}
	f := &Fragment{
		Type:  primaryType(s.Type),
		Items: FromSchema3Ref(s.Items),
	}
	applyAdditional(f, s.AdditionalProperties)
	return f
}

// FromParameter adapts a Swagger 2.0 parameter. Non-body parameters declare
// type and items inline; body parameters wrap a schema.
func FromParameter(p *openapi2.Parameter) *Fragment {
	if p == nil {
		return nil
	}
	return &Fragment{
		Type:   primaryType(p.Type),
		Items:  FromSchemaRef(p.Items),
		Schema: FromSchemaRef(p.Schema),
	}
}

func applyAdditional(f *Fragment, ap openapi3.AdditionalProperties) {
	if ap.Schema != nil {
		f.AdditionalProperties = FromSchema3Ref(ap.Schema)
		return
	}
	if ap.Has != nil && *ap.Has {
		f.AnyAdditional = true
	}
}

// primaryType returns the first non-null declared type.
func primaryType(types *openapi3.Types) string {
	for _, t := range types.Slice() {
		if t != "null" {
			return t
		}
	}
	return ""
}
