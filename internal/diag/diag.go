// Package diag collects the non-fatal problems found while generating code.
//
// Generation is best effort: an operation whose types cannot be resolved
// still produces output, and the problem is reported here instead of
// aborting the run.
package diag

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"
)

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Code identifies the kind of problem.
type Code string

const (
	// CodeUnresolvedType: a schema fragment matched none of the known shapes.
	CodeUnresolvedType Code = "unresolved-type"
	// CodeBadReference: a $ref is not a #/definitions/ pointer.
	CodeBadReference Code = "bad-reference"
	// CodeBadOperationID: an operation id lacks the Using... suffix.
	CodeBadOperationID Code = "bad-operation-id"
	// CodeMissingTag: an operation has no tags.
	CodeMissingTag Code = "missing-tag"
	// CodeBadComponentRef: a parameter or response $ref points nowhere.
	CodeBadComponentRef Code = "bad-component-ref"
	// CodeDuplicateFile: two groups map to the same output file name.
	CodeDuplicateFile Code = "duplicate-file"
)

// Diagnostic is a single reported problem. Subject names what it is about,
// usually an operation id or a path.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Subject  string
	Message  string
}

func (d Diagnostic) Error() string {
	if d.Subject == "" {
		return fmt.Sprintf("%s [%s]: %s", d.Severity, d.Code, d.Message)
	}
	return fmt.Sprintf("%s [%s] %s: %s", d.Severity, d.Code, d.Subject, d.Message)
}

// Reporter receives diagnostics as they are found.
type Reporter interface {
	Report(d Diagnostic)
}

// Errorf reports an error diagnostic.
func Errorf(r Reporter, code Code, subject, format string, args ...any) {
	r.Report(Diagnostic{Severity: SevError, Code: code, Subject: subject, Message: fmt.Sprintf(format, args...)})
}

// Warnf reports a warning diagnostic.
func Warnf(r Reporter, code Code, subject, format string, args ...any) {
	r.Report(Diagnostic{Severity: SevWarning, Code: code, Subject: subject, Message: fmt.Sprintf(format, args...)})
}

// Bag stores diagnostics in report order. It is safe for concurrent use.
type Bag struct {
	mu    sync.Mutex
	items []Diagnostic
}

func NewBag() *Bag {
	return &Bag{}
}

func (b *Bag) Report(d Diagnostic) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, d)
}

func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Items returns a copy of the collected diagnostics.
func (b *Bag) Items() []Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Diagnostic(nil), b.items...)
}

// Count returns how many diagnostics have exactly the given severity.
func (b *Bag) Count(sev Severity) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, d := range b.items {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// HasCode reports whether any diagnostic with code was collected.
func (b *Bag) HasCode(code Code) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, d := range b.items {
		if d.Code == code {
			return true
		}
	}
	return false
}

// LogReporter writes diagnostics to a structured logger as they arrive.
type LogReporter struct {
	Log logr.Logger
}

func (l LogReporter) Report(d Diagnostic) {
	kv := []any{"code", string(d.Code), "subject", d.Subject}
	switch d.Severity {
	case SevError:
		l.Log.Error(d, "generation problem", kv...)
	case SevWarning:
		l.Log.Info(d.Message, append(kv, "severity", d.Severity.String())...)
	default:
		l.Log.V(1).Info(d.Message, kv...)
	}
}

// MultiReporter fans a diagnostic out to several reporters.
type MultiReporter []Reporter

func (m MultiReporter) Report(d Diagnostic) {
	for _, r := range m {
		r.Report(d)
	}
}

// Nop discards diagnostics.
type Nop struct{}

func (Nop) Report(Diagnostic) {}

var (
	_ Reporter = (*Bag)(nil)
	_ Reporter = LogReporter{}
	_ Reporter = MultiReporter{}
	_ Reporter = Nop{}
)
