package corpus

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ssor/bom"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"jaytaylor.com/html2text"
)

// DefaultEncodings are tried in order when decoding a source file.
var DefaultEncodings = []string{"utf-8", "windows-1252"}

// ReadText reads the document source below root and returns it with Text
// set. A missing file fails with ErrMissingFile, content that no encoding
// decodes cleanly with ErrUnreadableEncoding.
func ReadText(root string, doc Document, encodings []string) (Document, error) {
	path := doc.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return doc, MissingFile(doc.Name(), err)
	}

	text, err := Decode(data, encodings)
	if err != nil {
		return doc, UnreadableEncoding(doc.Name(), err)
	}

	switch doc.Format {
	case FormatHTML:
		text, err = html2text.FromString(text, html2text.Options{PrettyTables: false})
		if err != nil {
			return doc, UnreadableEncoding(doc.Name(), fmt.Errorf("html: %w", err))
		}
	case FormatRTF:
		text, err = RTFText(text)
		if err != nil {
			return doc, UnreadableEncoding(doc.Name(), fmt.Errorf("rtf: %w", err))
		}
	}

	doc.Text = text
	return doc, nil
}

// Decode returns data as a string, using the first encoding that yields
// clean text.
func Decode(data []byte, encodings []string) (string, error) {
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}

	if bytes.IndexByte(data, 0) >= 0 {
		return "", errors.New("binary content")
	}

	for _, name := range encodings {
		if isUTF8(name) {
			if utf8.Valid(data) {
				return string(bom.CleanBom(data)), nil
			}
			continue
		}

		enc, err := lookupEncoding(name)
		if err != nil {
			return "", err
		}

		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		if bytes.ContainsRune(out, utf8.RuneError) {
			continue
		}
		return string(out), nil
	}

	return "", fmt.Errorf("not decodable as any of %s", strings.Join(encodings, ", "))
}

func isUTF8(name string) bool {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return true
	}
	return false
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "latin-1", "latin1":
		return charmap.ISO8859_1, nil
	case "iso-8859-15", "latin-9":
		return charmap.ISO8859_15, nil
	}
	return nil, fmt.Errorf("unsupported encoding: %s", name)
}
