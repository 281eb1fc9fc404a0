package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/cihub/seelog"
	"github.com/spf13/viper"
)

// ManifestName is looked up inside a corpus directory.
const ManifestName = "corpus.yaml"

// UnknownAuthor names the author of entries without one.
const UnknownAuthor = "Unknown Author"

// Manifest describes the corpus: where the files are and which author,
// title and group each one belongs to.
type Manifest struct {
	// Root is the directory document paths are relative to.
	Root string `mapstructure:"root"`

	// Tokenizer names the token.Tokenizer used to split the texts.
	Tokenizer string `mapstructure:"tokenizer"`

	// Encodings are tried in order for files that are not UTF-8.
	Encodings []string `mapstructure:"encodings"`

	Documents []Entry     `mapstructure:"documents"`
	Discover  []Discovery `mapstructure:"discover"`
}

// Entry declares one document. Its file must exist.
type Entry struct {
	Path   string `mapstructure:"path"`
	Author string `mapstructure:"author"`
	Title  string `mapstructure:"title"`
	Year   int    `mapstructure:"year"`
	Group  string `mapstructure:"group"`
	Format string `mapstructure:"format"`
}

// Discovery adds every .txt, .html and .rtf file of Dir to Group.
type Discovery struct {
	Dir   string `mapstructure:"dir"`
	Group string `mapstructure:"group"`

	// Author of every file in Dir. When empty the author is looked up in
	// Authors by title substring.
	Author  string            `mapstructure:"author"`
	Authors map[string]string `mapstructure:"authors"`
}

// DefaultManifest is the layout of the study corpus: a hemingway
// folder and a comparables folder whose authors follow from the titles.
func DefaultManifest(root string) Manifest {
	return Manifest{
		Root:      root,
		Tokenizer: "lexer",
		Encodings: DefaultEncodings,
		Discover: []Discovery{
			{Dir: "hemingway", Group: string(Hemingway), Author: "Ernest Hemingway"},
			{Dir: "comparables", Group: string(Contemporary), Authors: map[string]string{
				"Winesburg, Ohio":    "Sherwood Anderson",
				"The Great Gatsby":   "F. Scott Fitzgerald",
				"Manhattan Transfer": "John Dos Passos",
				"As I Lay Dying":     "William Faulkner",
				"1919":               "John Dos Passos",
				"Of Mice and Men":    "John Steinbeck",
			}},
		},
	}
}

// LoadManifest reads the manifest at path. path is either a manifest file
// (any format viper reads) or a corpus directory, in which case its
// corpus.yaml is used, or DefaultManifest when there is none.
func LoadManifest(path string) (Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("corpus not found: %s", path)
	}

	if info.IsDir() {
		candidate := filepath.Join(path, ManifestName)
		if _, err := os.Stat(candidate); errors.Is(err, fs.ErrNotExist) {
			log.Infof("no %s in %s, using the default layout", ManifestName, path)
			return DefaultManifest(path), nil
		}
		path = candidate
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("tokenizer", "lexer")
	v.SetDefault("encodings", DefaultEncodings)

	if err := v.ReadInConfig(); err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := v.Unmarshal(&m); err != nil {
		return Manifest{}, fmt.Errorf("failed to decode manifest %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	switch {
	case m.Root == "":
		m.Root = dir
	case !filepath.IsAbs(m.Root):
		m.Root = filepath.Join(dir, m.Root)
	}

	if len(m.Documents) == 0 && len(m.Discover) == 0 {
		return Manifest{}, fmt.Errorf("manifest %s declares no documents", path)
	}

	return m, nil
}

// Library resolves the manifest into documents, declared ones first. Text
// is not read. A discovery directory that does not exist is skipped with a
// warning; the group it should fill is checked when aggregating.
func (m Manifest) Library() (Library, error) {
	var lib Library
	seen := map[string]bool{}

	for _, e := range m.Documents {
		if e.Path == "" {
			return nil, fmt.Errorf("manifest document %q has no path", e.Title)
		}

		g, err := ParseGroup(e.Group)
		if err != nil {
			return nil, fmt.Errorf("manifest document %s: %w", e.Path, err)
		}

		title := e.Title
		if title == "" {
			title = stem(e.Path)
		}

		author := e.Author
		if author == "" {
			author = UnknownAuthor
		}

		format, err := formatOf(e.Path, e.Format)
		if err != nil {
			return nil, fmt.Errorf("manifest document %s: %w", e.Path, err)
		}

		lib = append(lib, Document{
			Author: author,
			Title:  title,
			Year:   e.Year,
			Group:  g,
			Path:   e.Path,
			Format: format,
		})
		seen[filepath.Clean(e.Path)] = true
	}

	for _, d := range m.Discover {
		g, err := ParseGroup(d.Group)
		if err != nil {
			return nil, fmt.Errorf("manifest discovery %s: %w", d.Dir, err)
		}

		files, err := os.ReadDir(filepath.Join(m.Root, d.Dir))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Warnf("corpus directory %s does not exist", filepath.Join(m.Root, d.Dir))
				continue
			}
			return nil, err
		}

		found := 0
		for _, file := range files {
			if file.IsDir() || !isSource(file.Name()) {
				continue
			}

			rel := filepath.Join(d.Dir, file.Name())
			if seen[filepath.Clean(rel)] {
				continue
			}
			seen[filepath.Clean(rel)] = true

			title := stem(file.Name())
			author := d.Author
			if author == "" {
				author = authorForTitle(title, d.Authors)
			}

			// the extension is one isSource accepts
			format, _ := formatOf(rel, "")

			lib = append(lib, Document{
				Author: author,
				Title:  title,
				Group:  g,
				Path:   rel,
				Format: format,
			})
			found++
		}

		if found == 0 {
			log.Warnf("no source files found in %s", filepath.Join(m.Root, d.Dir))
		}
	}

	for i := range lib {
		lib[i].Id = i
	}

	return lib, nil
}

// authorForTitle finds the author whose work title is part of title.
// Keys are compared case-insensitively since viper folds map keys.
func authorForTitle(title string, authors map[string]string) string {
	keys := make([]string, 0, len(authors))
	for k := range authors {
		keys = append(keys, k)
	}
	// longest first, so that "1919" never shadows a longer title
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	lower := strings.ToLower(title)
	for _, k := range keys {
		if strings.Contains(lower, strings.ToLower(k)) {
			return authors[k]
		}
	}

	return UnknownAuthor
}

func isSource(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".html", ".htm", ".rtf":
		return true
	}
	return false
}

func formatOf(path, declared string) (string, error) {
	if declared != "" {
		return ParseFormat(declared)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML, nil
	case ".rtf":
		return FormatRTF, nil
	}
	return FormatText, nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
