// Package imports tracks the symbols a generated file needs from other modules.
package imports

import (
	"fmt"
	"strings"
)

// Registry maps a module identifier to the ordered set of symbols imported
// from it. Modules and symbols keep their first-insertion order so rendered
// output is reproducible.
//
// A Registry belongs to exactly one generated file and is not safe for
// concurrent use.
type Registry struct {
	modules []string
	symbols map[string][]string
	seen    map[string]map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		symbols: make(map[string][]string),
		seen:    make(map[string]map[string]struct{}),
	}
}

// Record adds symbol to the set imported from module.
func (r *Registry) Record(symbol, module string) {
	if symbol == "" {
		return
	}

	set, ok := r.seen[module]
	if !ok {
		set = make(map[string]struct{})
		r.seen[module] = set
		r.modules = append(r.modules, module)
	}
	if _, exists := set[symbol]; exists {
		return
	}
	set[symbol] = struct{}{}
	r.symbols[module] = append(r.symbols[module], symbol)
}

// Modules returns the recorded modules in first-insertion order.
func (r *Registry) Modules() []string {
	return append([]string(nil), r.modules...)
}

// Symbols returns the symbols recorded for module in first-insertion order.
func (r *Registry) Symbols(module string) []string {
	return append([]string(nil), r.symbols[module]...)
}

// Len returns the number of modules with at least one symbol.
func (r *Registry) Len() int {
	return len(r.modules)
}

// Render returns one import statement per module.
func (r *Registry) Render() []string {
	statements := make([]string, 0, len(r.modules))
	for _, module := range r.modules {
		statements = append(statements, fmt.Sprintf("import { %s } from '%s';", strings.Join(r.symbols[module], ", "), module))
	}
	return statements
}
