// Package document loads Swagger 2.0 documents and hands their operations to
// the code model in document order.
package document

import (
	"slices"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/invopop/yaml"
	yamlv3 "gopkg.in/yaml.v3"
)

// methodOrder is used when the document key order is not available.
var methodOrder = []string{"get", "put", "post", "delete", "options", "head", "patch"}

// Document is a parsed Swagger 2.0 document together with the order its
// paths and methods were written in.
type Document struct {
	Source string
	Spec   *openapi2.T

	paths   []string
	methods map[string][]string
}

// Parse decodes JSON or YAML content. source only labels errors.
func Parse(data []byte, source string) (*Document, error) {
	var spec openapi2.T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, LoadError{
			Code:    CodeDecodeError,
			Source:  source,
			Message: "failed to decode swagger document",
			Err:     err,
		}
	}
	if !strings.HasPrefix(spec.Swagger, "2.") {
		return nil, LoadError{
			Code:    CodeVersionError,
			Source:  source,
			Message: "only swagger 2.0 documents are supported, got version " + quoteOrMissing(spec.Swagger),
		}
	}

	d := &Document{Source: source, Spec: &spec}
	d.paths, d.methods = keyOrder(data)
	return d, nil
}

func quoteOrMissing(v string) string {
	if v == "" {
		return "<missing>"
	}
	return `"` + v + `"`
}

// Paths returns the document's path keys in document order.
func (d *Document) Paths() []string {
	out := make([]string, 0, len(d.Spec.Paths))
	for _, p := range d.paths {
		if _, ok := d.Spec.Paths[p]; ok {
			out = append(out, p)
		}
	}
	if len(out) == len(d.Spec.Paths) {
		return out
	}

	var rest []string
	for p := range d.Spec.Paths {
		if !slices.Contains(out, p) {
			rest = append(rest, p)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// Methods returns the lower-case HTTP methods declared under path, in
// document order. Non-method keys such as parameters are skipped.
func (d *Document) Methods(path string) []string {
	item := d.Spec.Paths[path]
	if item == nil {
		return nil
	}
	declared := item.Operations()

	var out []string
	for _, m := range d.methods[path] {
		if _, ok := declared[strings.ToUpper(m)]; ok && !slices.Contains(out, m) {
			out = append(out, m)
		}
	}
	for _, m := range methodOrder {
		if _, ok := declared[strings.ToUpper(m)]; ok && !slices.Contains(out, m) {
			out = append(out, m)
		}
	}
	return out
}

// keyOrder walks the raw document to recover the order of paths and of the
// methods under each path. Content yaml.v3 cannot read yields no order.
func keyOrder(data []byte) ([]string, map[string][]string) {
	var root yamlv3.Node
	if err := yamlv3.Unmarshal(data, &root); err != nil || len(root.Content) == 0 {
		return nil, nil
	}

	pathsNode := mappingValue(root.Content[0], "paths")
	if pathsNode == nil {
		return nil, nil
	}

	var paths []string
	methods := make(map[string][]string)
	for i := 0; i+1 < len(pathsNode.Content); i += 2 {
		path := pathsNode.Content[i].Value
		paths = append(paths, path)

		item := pathsNode.Content[i+1]
		if item.Kind != yamlv3.MappingNode {
			continue
		}
		for j := 0; j+1 < len(item.Content); j += 2 {
			key := strings.ToLower(item.Content[j].Value)
			if slices.Contains(methodOrder, key) {
				methods[path] = append(methods[path], key)
			}
		}
	}
	return paths, methods
}

func mappingValue(n *yamlv3.Node, key string) *yamlv3.Node {
	if n == nil || n.Kind != yamlv3.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}
