// Package document reads widget documents: YAML files describing one Bulma widget and its items.
//
//	kind: dropdown
//	title: Account menu
//	dropdown:
//	  buttonLabel: Account
//	items:
//	  - label: Profile
//	    url: /profile
//	  - divider: true
//	  - label: Logout
//	    url: /logout
package document

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/GoBulma/GoBulma/pkg/bulma"
	"github.com/GoBulma/GoBulma/pkg/html"
	"github.com/GoBulma/GoBulma/pkg/menu"
	"github.com/GoBulma/GoBulma/pkg/widget"
)

// Kind names the widget a document renders.
type Kind string

// Document kinds.
const (
	KindDropdown Kind = "dropdown"
	KindNav      Kind = "nav"
	KindNavBar   Kind = "navbar"
	KindMessage  Kind = "message"
)

// Document is one widget described in YAML.
type Document struct {
	Kind        Kind   `yaml:"kind" validate:"required,oneof=dropdown nav navbar message"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`

	ID         string          `yaml:"id"`
	IDPrefix   string          `yaml:"idPrefix" validate:"omitempty,max=32"`
	Attributes html.Attributes `yaml:"attributes"`
	Size       string          `yaml:"size" validate:"omitempty,oneof=is-small is-medium is-large"`

	CurrentPath       string            `yaml:"currentPath" validate:"omitempty,startswith=/"`
	ActivateItems     *bool             `yaml:"activateItems"`
	ActivateParents   bool              `yaml:"activateParents"`
	SubmenuAttributes html.Attributes   `yaml:"submenuAttributes"`
	Items             []menu.Descriptor `yaml:"items" validate:"required_unless=Kind message"`

	Body string `yaml:"body" validate:"required_if=Kind message"`

	Dropdown DropdownOptions `yaml:"dropdown"`
	NavBar   NavBarOptions   `yaml:"navbar"`
	Message  MessageOptions  `yaml:"message"`
}

// DropdownOptions are read for kind dropdown.
type DropdownOptions struct {
	ButtonLabel      string          `yaml:"buttonLabel"`
	ButtonAttributes html.Attributes `yaml:"buttonAttributes"`
	ButtonIconText   *string         `yaml:"buttonIconText"`
	ButtonIconClass  string          `yaml:"buttonIconClass"`
	WithoutContainer bool            `yaml:"withoutContainer"`
}

// NavBarOptions are read for kind navbar.
type NavBarOptions struct {
	BrandText  string  `yaml:"brandText"`
	BrandImage string  `yaml:"brandImage"`
	BrandURL   *string `yaml:"brandUrl"`
}

// MessageOptions are read for kind message.
type MessageOptions struct {
	Header             string `yaml:"header"`
	Color              string `yaml:"color" validate:"omitempty,oneof=is-primary is-link is-info is-success is-warning is-danger"` //nolint:lll
	WithoutHeader      bool   `yaml:"withoutHeader"`
	WithoutCloseButton bool   `yaml:"withoutCloseButton"`
}

// Load reads and validates the document at path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, errors.Wrapf(err, "failed to read widget document %s", path)
	}

	d, err := Decode(data)
	if err != nil {
		return Document{}, errors.Wrap(err, path)
	}

	return d, nil
}

// Decode parses and validates a document. Item labels are checked too, so a decoded document only fails to
// render on invalid option values.
func Decode(data []byte) (Document, error) {
	var d Document

	if err := yaml.Unmarshal(data, &d); err != nil {
		return Document{}, errors.Wrap(err, "failed to decode widget document")
	}

	if err := validatorInstance().Struct(d); err != nil {
		if fe := fieldErrors(err); len(fe) > 0 {
			msgs := make([]string, len(fe))
			for i, e := range fe {
				msgs[i] = e.String()
			}

			return Document{}, errors.Wrap(ErrInvalidDocument, strings.Join(msgs, "; "))
		}

		return Document{}, errors.Wrap(err, "failed to validate widget document")
	}

	if _, err := menu.Build(d.Items); err != nil {
		return Document{}, errors.Wrap(err, "invalid widget items")
	}

	return d, nil
}

// MenuItems returns the items of the document.
func (d Document) MenuItems() []menu.Item {
	return menu.Items(d.Items)
}

// Render builds the widget with element ids taken from ids.
func (d Document) Render(ids widget.IDAllocator) (string, error) {
	switch d.Kind {
	case KindDropdown:
		return d.dropdown(ids).Render()
	case KindNav:
		return d.nav(ids).Render()
	case KindNavBar:
		return d.navBar(ids)
	case KindMessage:
		m, err := d.message(ids)
		if err != nil {
			return "", err
		}

		return m.Render(), nil
	}

	return "", errors.Wrapf(ErrUnknownKind, "%q", d.Kind)
}

func (d Document) idPrefix() string {
	if d.IDPrefix == "" {
		return widget.DefaultIDPrefix
	}

	return d.IDPrefix
}

func (d Document) dropdown(ids widget.IDAllocator) bulma.Dropdown {
	dd := bulma.NewDropdown().
		WithIDAllocator(ids).
		WithAutoIDPrefix(d.idPrefix()).
		WithID(d.ID).
		WithAttributes(d.Attributes).
		WithItems(d.MenuItems()).
		WithSubmenuAttributes(d.SubmenuAttributes).
		WithCurrentPath(d.CurrentPath).
		WithButtonAttributes(d.Dropdown.ButtonAttributes).
		WithButtonIconCSSClass(d.Dropdown.ButtonIconClass)

	if d.Dropdown.ButtonLabel != "" {
		dd = dd.WithButtonLabel(d.Dropdown.ButtonLabel)
	}

	if d.Dropdown.ButtonIconText != nil {
		dd = dd.WithButtonIconText(*d.Dropdown.ButtonIconText)
	}

	if d.Dropdown.WithoutContainer {
		dd = dd.WithoutContainer()
	}

	if d.ActivateItems != nil && !*d.ActivateItems {
		dd = dd.WithoutActivateItems()
	}

	if d.ActivateParents {
		dd = dd.WithActivateParents()
	}

	return dd
}

func (d Document) nav(ids widget.IDAllocator) bulma.Nav {
	n := bulma.NewNav().
		WithIDAllocator(ids).
		WithAutoIDPrefix(d.idPrefix()).
		WithAttributes(d.Attributes).
		WithItems(d.MenuItems()).
		WithSubmenuAttributes(d.SubmenuAttributes).
		WithCurrentPath(d.CurrentPath)

	if d.ActivateItems != nil && !*d.ActivateItems {
		n = n.WithoutActivateItems()
	}

	if d.ActivateParents {
		n = n.WithActivateParents()
	}

	return n
}

// navBar renders the items through Nav inside the navbar menu. Document attributes go to the nav element.
func (d Document) navBar(ids widget.IDAllocator) (string, error) {
	bar := bulma.NewNavBar().
		WithIDAllocator(ids).
		WithAutoIDPrefix(d.idPrefix()).
		WithID(d.ID).
		WithAttributes(d.Attributes).
		WithBrandText(d.NavBar.BrandText).
		WithBrandImage(d.NavBar.BrandImage)

	if d.NavBar.BrandURL != nil {
		bar = bar.WithBrandURL(*d.NavBar.BrandURL)
	}

	// the nav element takes its id before the submenus do
	begin := bar.Begin()

	items, err := d.nav(ids).WithAttributes(nil).Render()
	if err != nil {
		return "", err
	}

	start := html.Tag("div", html.Attrs("class", "navbar-start"), "\n"+items+"\n")
	menuDiv := html.Tag("div", html.Attrs("class", "navbar-menu"), "\n"+start+"\n")

	return begin + menuDiv + "\n" + bar.End(), nil
}

func (d Document) message(ids widget.IDAllocator) (bulma.Message, error) {
	m := bulma.NewMessage().
		WithIDAllocator(ids).
		WithAutoIDPrefix(d.idPrefix()).
		WithID(d.ID).
		WithAttributes(d.Attributes).
		WithHeaderMessage(d.Message.Header).
		WithBody(d.Body)

	var err error

	if d.Size != "" {
		if m, err = m.WithSize(widget.Size(d.Size)); err != nil {
			return m, err
		}
	}

	if d.Message.Color != "" {
		if m, err = m.WithHeaderColor(widget.Color(d.Message.Color)); err != nil {
			return m, err
		}
	}

	if d.Message.WithoutHeader {
		m = m.WithoutHeader()
	}

	if d.Message.WithoutCloseButton {
		m = m.WithoutCloseButton()
	}

	return m, nil
}
