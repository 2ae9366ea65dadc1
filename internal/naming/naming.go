// Package naming holds the pattern matching and case conversion used to turn
// API identifiers into TypeScript names.
package naming

import (
	"errors"
	"regexp"

	"github.com/gobuffalo/flect"
	"github.com/stoewer/go-strcase"
)

// ErrNoMatch is returned when an identifier does not have the expected shape.
var ErrNoMatch = errors.New("identifier does not match expected pattern")

var (
	// operationIDPattern matches springfox style ids such as getWidgetUsingGET.
	operationIDPattern = regexp.MustCompile(`(.+)Using.+$`)
	// definitionRefPattern matches local definition pointers.
	definitionRefPattern = regexp.MustCompile(`^#/definitions/(.+)`)
	// wrapperPattern matches generic wrapper names such as Page«Widget».
	wrapperPattern = regexp.MustCompile(`^(?:((Page|PaginationResponse)«(.+)»)|(.+))`)
)

// MethodName strips the trailing Using... suffix from an operation id.
//
//	getWidgetUsingGET     -> getWidget
//	findUsingAllUsingPOST -> findUsingAll
//	doThing               -> ErrNoMatch
func MethodName(operationID string) (string, error) {
	m := operationIDPattern.FindStringSubmatch(operationID)
	if m == nil || m[1] == "" {
		return "", ErrNoMatch
	}
	return m[1], nil
}

// DefinitionName extracts <Name> from a #/definitions/<Name> pointer.
func DefinitionName(ref string) (string, error) {
	m := definitionRefPattern.FindStringSubmatch(ref)
	if m == nil || m[1] == "" {
		return "", ErrNoMatch
	}
	return m[1], nil
}

// Wrapper is the result of matching a definition name against the generic
// wrapper pattern.
type Wrapper struct {
	// Full is the whole matched wrapper, e.g. Page«Widget».
	Full string
	// Kind is Page or PaginationResponse.
	Kind string
	// Inner is the wrapped element name, e.g. Widget.
	Inner string
}

// MatchWrapper reports whether name is a Page«...» or PaginationResponse«...»
// wrapper. Text after the last closing guillemet is not part of Full.
func MatchWrapper(name string) (Wrapper, bool) {
	m := wrapperPattern.FindStringSubmatch(name)
	if m == nil || m[1] == "" {
		return Wrapper{}, false
	}
	return Wrapper{Full: m[1], Kind: m[2], Inner: m[3]}, true
}

// FileName converts an API tag into a file name: "widget-controller" and
// "Widget Controller" both become "widgetController".
func FileName(tag string) string {
	return strcase.LowerCamelCase(tag)
}

// ClassName derives the class name from a file name.
func ClassName(fileName string) string {
	return flect.Capitalize(fileName)
}
