package codemodel

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Argument is one method parameter. It is immutable once created.
type Argument struct {
	Name     string
	Type     string
	Required bool
	Default  any
}

// String renders name: type.
func (a *Argument) String() string {
	return fmt.Sprintf("%s: %s", a.Name, a.Type)
}

// signature renders the argument, marking it optional when asked to and the
// parameter is not required.
func (a *Argument) signature(optional bool) string {
	if !optional || a.Required {
		return a.String()
	}
	if a.Default != nil {
		if lit, ok := literal(a.Default); ok {
			return fmt.Sprintf("%s: %s = %s", a.Name, a.Type, lit)
		}
	}
	return fmt.Sprintf("%s?: %s", a.Name, a.Type)
}

// literal renders a default value as a TypeScript literal.
func literal(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return "'" + strings.ReplaceAll(s, "'", `\'`) + "'", true
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", false
	}
	return string(b), true
}
