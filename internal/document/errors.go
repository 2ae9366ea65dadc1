package document

import "fmt"

// LoadErrorCode classifies a LoadError.
type LoadErrorCode string

const (
	// CodeFetchError indicates the document could not be read or downloaded.
	CodeFetchError LoadErrorCode = "FetchError"
	// CodeDecodeError indicates the content is neither JSON nor YAML, or does
	// not decode into a Swagger document.
	CodeDecodeError LoadErrorCode = "DecodeError"
	// CodeVersionError indicates a document that is not Swagger 2.0.
	CodeVersionError LoadErrorCode = "VersionError"
)

// LoadError is the fatal error returned by Load and Parse.
type LoadError struct {
	Code LoadErrorCode
	// Source is the identifier the document was loaded from.
	Source  string
	Message string
	Err     error
}

func (e LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load error [%s] %s: %s: %v", e.Code, e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("load error [%s] %s: %s", e.Code, e.Source, e.Message)
}

func (e LoadError) Unwrap() error {
	return e.Err
}
