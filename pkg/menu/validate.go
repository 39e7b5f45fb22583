package menu

import (
	"errors"
	"strconv"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrMissingLabel is returned when a header, link or submenu has no label.
	ErrMissingLabel = errors.New(`the "label" option is required`)

	// ErrNilItem is returned when a tree contains a nil item.
	ErrNilItem = errors.New("menu item is nil")
)

// Validate checks the whole tree before anything is rendered. Hidden items are not checked.
// The returned error names the offending item, e.g. items[1].items[0].
func Validate(items []Item) error {
	return validate(items, "items")
}

func validate(items []Item, path string) error {
	for i, it := range items {
		p := path + "[" + strconv.Itoa(i) + "]"

		if it == nil {
			return pkgerrors.Wrap(ErrNilItem, p)
		}

		if !Visible(it) {
			continue
		}

		switch v := it.(type) {
		case Header:
			if v.Label == "" {
				return pkgerrors.Wrap(ErrMissingLabel, p)
			}
		case Link:
			if v.Label == "" {
				return pkgerrors.Wrap(ErrMissingLabel, p)
			}
		case Submenu:
			if v.Label == "" {
				return pkgerrors.Wrap(ErrMissingLabel, p)
			}

			if err := validate(v.Items, p+".items"); err != nil {
				return err
			}
		}
	}

	return nil
}
