// Package menu models navigation and dropdown item trees and renders them to markup.
//
// An item is one of Divider, Raw, Header, Link or Submenu. Trees are plain values supplied by the caller;
// rendering validates the whole tree first and never modifies it.
package menu

import (
	"github.com/GoBulma/GoBulma/pkg/html"
)

// Item is a node of a menu tree. The set of implementations is closed.
type Item interface {
	isItem()
}

// Icon decorates a label. It renders before the label text.
type Icon struct {
	Text       string          `yaml:"text"`
	CSSClass   string          `yaml:"class"`
	Attributes html.Attributes `yaml:"attributes"`
}

// IsZero reports whether the icon renders nothing.
func (i Icon) IsZero() bool {
	return i.Text == "" && i.CSSClass == ""
}

// Divider separates groups of items with a horizontal rule.
type Divider struct{}

// Raw is emitted verbatim, without encoding. Use it for pre-rendered markup.
type Raw string

// Header is a non-interactive heading.
type Header struct {
	Label      string
	Encode     bool
	Icon       Icon
	Attributes html.Attributes
	Hidden     bool
}

// Link is a navigable item.
type Link struct {
	Label string
	URL   string
	// Active marks the item active regardless of the current path.
	Active   bool
	Disabled bool
	Icon     Icon
	// Verbatim emits the decorated label without any enclosing element.
	Verbatim bool
	// Encode HTML-escapes the label.
	Encode bool
	// Attributes of the anchor element.
	Attributes html.Attributes
	Hidden     bool
}

// Submenu is an item with children rendered in a popup container.
type Submenu struct {
	Label      string
	URL        string
	Active     bool
	Disabled   bool
	Icon       Icon
	Encode     bool
	Attributes html.Attributes
	Items      []Item
	// SubmenuAttributes are merged into the popup container attributes. An id attribute
	// replaces the generated popup id.
	SubmenuAttributes html.Attributes
	// Nested selects the link-triggered form instead of the button-triggered dropdown.
	Nested bool
	Hidden bool
}

func (Divider) isItem() {}
func (Raw) isItem()     {}
func (Header) isItem()  {}
func (Link) isItem()    {}
func (Submenu) isItem() {}

// Visible reports whether it produces output.
func Visible(it Item) bool {
	switch v := it.(type) {
	case Header:
		return !v.Hidden
	case Link:
		return !v.Hidden
	case Submenu:
		return !v.Hidden
	case nil:
		return false
	default:
		return true
	}
}

// HasVisible reports whether any of items produces output.
func HasVisible(items []Item) bool {
	for _, it := range items {
		if Visible(it) {
			return true
		}
	}

	return false
}

// asLink turns a submenu without children into the equivalent link.
func (s Submenu) asLink() Link {
	return Link{
		Label:      s.Label,
		URL:        s.URL,
		Active:     s.Active,
		Disabled:   s.Disabled,
		Icon:       s.Icon,
		Encode:     s.Encode,
		Attributes: s.Attributes,
		Hidden:     s.Hidden,
	}
}
