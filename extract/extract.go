// Package extract counts the adpositions of corpus documents.
package extract

import (
	log "github.com/cihub/seelog"

	"github.com/revelaction/adpos/adposition"
	"github.com/revelaction/adpos/corpus"
	"github.com/revelaction/adpos/token"
)

type Extractor struct {
	tokenizer token.Tokenizer
	folder    *token.Folder
}

func NewExtractor(t token.Tokenizer) *Extractor {
	return &Extractor{tokenizer: t, folder: token.NewFolder()}
}

// Count counts exact, case-folded matches of the adpositions in tokens. It
// also returns the number of word tokens.
func (e *Extractor) Count(tokens []string) (adposition.Counts, int) {
	counts := adposition.NewCounts()
	words := 0

	for _, tok := range tokens {
		if !token.IsWord(tok) {
			continue
		}
		words++

		if a, ok := adposition.Lookup(e.folder.Fold(tok)); ok {
			counts[a]++
		}
	}

	return counts, words
}

// Extract tokenizes the text of doc and returns its counts.
func (e *Extractor) Extract(doc corpus.Document) (corpus.Record, error) {
	tokens, err := e.tokenizer.Tokens(doc.Text)
	if err != nil {
		return corpus.Record{}, corpus.UnreadableEncoding(doc.Name(), err)
	}

	counts, words := e.Count(tokens)
	if words == 0 {
		log.Warnf("%s has no words", doc.Name())
	}

	log.Debugf("%s: %d tokens, %d words, %d adpositions", doc.Name(), len(tokens), words, counts.Total())
	return doc.Record(words, len(tokens), counts), nil
}

// Library reads and extracts every document of lib, in order. Documents
// are read below root with the given encodings. cb, when not nil, is
// called before each document. The first failing document stops the run.
func (e *Extractor) Library(root string, lib corpus.Library, encodings []string, cb func(total int, name string)) ([]corpus.Record, error) {
	records := make([]corpus.Record, 0, len(lib))

	total := len(lib)
	for _, doc := range lib {
		if cb != nil {
			cb(total, doc.Title)
		}

		full, err := corpus.ReadText(root, doc, encodings)
		if err != nil {
			return nil, err
		}

		rec, err := e.Extract(full)
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, nil
}
