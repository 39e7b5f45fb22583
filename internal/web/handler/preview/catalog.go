package preview

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/GoBulma/GoBulma/internal/document"
)

// documentExtensions are tried in this order.
var documentExtensions = []string{".yaml", ".yml"} //nolint:gochecknoglobals

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`) //nolint:gochecknoglobals

// Entry is one widget document of the documents directory. Documents that fail to load are listed with Err set.
type Entry struct {
	Name     string
	Document document.Document
	Err      error
}

// Title returns the document title, the name when the document has none.
func (e Entry) Title() string {
	if e.Err == nil && e.Document.Title != "" {
		return e.Document.Title
	}

	return e.Name
}

// Catalog loads every document of dir, sorted by name. A name present with both extensions is read from the
// .yaml file.
func Catalog(dir string) ([]Entry, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read documents directory %s", dir)
	}

	entries := make([]Entry, 0, len(files))
	seen := make(map[string]bool, len(files))

	for _, ext := range documentExtensions {
		for _, f := range files {
			name, ok := strings.CutSuffix(f.Name(), ext)
			if f.IsDir() || !ok || seen[name] || !ValidName(name) {
				continue
			}

			seen[name] = true

			d, err := document.Load(filepath.Join(dir, f.Name()))
			entries = append(entries, Entry{Name: name, Document: d, Err: err})
		}
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	return entries, nil
}

// Find returns the entry called name.
func Find(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}

	return Entry{}, false
}

// ValidName reports whether name can be used in a preview URL.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}
