package corpus

import (
	"fmt"
	"strings"

	"github.com/revelaction/adpos/adposition"
)

// Group is one of the two author cohorts being compared.
type Group string

const (
	Hemingway    Group = "hemingway"
	Contemporary Group = "contemporary"
)

// Groups returns both cohorts, Hemingway first.
func Groups() []Group {
	return []Group{Hemingway, Contemporary}
}

// ParseGroup accepts the group names and the directory name of the
// comparables folder.
func ParseGroup(s string) (Group, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hemingway":
		return Hemingway, nil
	case "contemporary", "contemporaries", "comparables":
		return Contemporary, nil
	}
	return "", fmt.Errorf("unknown group: %q", s)
}

const (
	FormatText = "text"
	FormatHTML = "html"
	FormatRTF  = "rtf"
)

// ParseFormat accepts the source formats ReadText converts.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatText, FormatHTML, FormatRTF:
		return f, nil
	case "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown format: %q", s)
}

// Document is a literary work of the corpus.
type Document struct {
	Id int

	Author string
	Title  string
	Year   int
	Group  Group

	// Path of the source file, relative to the corpus root
	Path string

	// FormatText, FormatHTML or FormatRTF
	Format string

	// Decoded contents, empty until the file is read
	Text string
}

// Name identifies the document in messages.
func (d Document) Name() string {
	if d.Title != "" {
		return fmt.Sprintf("%s (%s)", d.Title, d.Path)
	}
	return d.Path
}

// Record returns the extraction row of the document.
func (d Document) Record(words, tokens int, counts adposition.Counts) Record {
	return Record{
		Id:         d.Id,
		Author:     d.Author,
		Title:      d.Title,
		Year:       d.Year,
		Group:      d.Group,
		Path:       d.Path,
		WordCount:  words,
		TokenCount: tokens,
		Counts:     counts,
	}
}

// Library is a collection of Document
type Library []Document

// Record holds the raw adposition counts of one document, without its text.
type Record struct {
	Id     int    `json:"id"`
	Author string `json:"author"`
	Title  string `json:"title"`
	Year   int    `json:"year"`
	Group  Group  `json:"group"`
	Path   string `json:"path"`

	// Number of word tokens, the basis of normalization
	WordCount int `json:"word_count"`

	// Number of tokens including punctuation
	TokenCount int `json:"token_count"`

	Counts adposition.Counts `json:"counts"`
}

// Name identifies the record in messages.
func (r Record) Name() string {
	return Document{Title: r.Title, Path: r.Path}.Name()
}
