package corpus

import (
	"errors"
	"fmt"
)

// Data error kinds. A DataError matches its kind with errors.Is.
var (
	ErrMissingFile        = errors.New("missing file")
	ErrUnreadableEncoding = errors.New("unreadable encoding")
	ErrZeroWordCount      = errors.New("zero word count")
	ErrEmptyCorpusGroup   = errors.New("empty corpus group")
)

// DataError is a fatal problem with one document, or with one group for
// ErrEmptyCorpusGroup. Doc names the offender.
type DataError struct {
	Kind error
	Doc  string
	Err  error
}

func (e *DataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %v", e.Doc, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Doc, e.Kind)
}

func (e *DataError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newDataError(kind error, doc string, err error) *DataError {
	return &DataError{Kind: kind, Doc: doc, Err: err}
}

// MissingFile builds a DataError of kind ErrMissingFile.
func MissingFile(doc string, err error) error {
	return newDataError(ErrMissingFile, doc, err)
}

// UnreadableEncoding builds a DataError of kind ErrUnreadableEncoding.
func UnreadableEncoding(doc string, err error) error {
	return newDataError(ErrUnreadableEncoding, doc, err)
}

// ZeroWordCount builds a DataError of kind ErrZeroWordCount.
func ZeroWordCount(doc string) error {
	return newDataError(ErrZeroWordCount, doc, nil)
}

// EmptyCorpusGroup builds a DataError of kind ErrEmptyCorpusGroup. name is
// the group (or author) with no documents.
func EmptyCorpusGroup(name string) error {
	return newDataError(ErrEmptyCorpusGroup, name, nil)
}
