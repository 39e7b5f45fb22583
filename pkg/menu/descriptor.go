package menu

import (
	"gopkg.in/yaml.v3"

	"github.com/GoBulma/GoBulma/pkg/html"
)

// Descriptor is the document form of an item, as found in YAML files.
//
// A scalar node decodes into a Raw item. `divider: true` is a divider and `header: true` a header;
// anything with items is a submenu and everything else a link. The string "-" is not a divider.
type Descriptor struct {
	Raw               string          `yaml:"-"`
	Divider           bool            `yaml:"divider"`
	Header            bool            `yaml:"header"`
	Label             string          `yaml:"label"`
	URL               string          `yaml:"url"`
	Active            bool            `yaml:"active"`
	Disabled          bool            `yaml:"disabled"`
	Encode            bool            `yaml:"encode"`
	Enclose           *bool           `yaml:"enclose"`
	Visible           *bool           `yaml:"visible"`
	Icon              Icon            `yaml:"icon"`
	Attributes        html.Attributes `yaml:"attributes"`
	Items             []Descriptor    `yaml:"items"`
	SubmenuAttributes html.Attributes `yaml:"submenuAttributes"`
	Submenu           bool            `yaml:"submenu"`

	raw bool
}

// descriptorFields avoids recursing into UnmarshalYAML.
type descriptorFields Descriptor

// UnmarshalYAML accepts either a scalar (raw markup) or a mapping.
func (d *Descriptor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*d = Descriptor{Raw: value.Value, raw: true}
		return nil
	}

	var f descriptorFields
	if err := value.Decode(&f); err != nil {
		return err //nolint:wrapcheck
	}

	*d = Descriptor(f)

	return nil
}

// RawDescriptor returns the descriptor of a Raw item.
func RawDescriptor(markup string) Descriptor {
	return Descriptor{Raw: markup, raw: true}
}

// Item converts d into its item variant.
func (d Descriptor) Item() Item {
	hidden := d.Visible != nil && !*d.Visible

	switch {
	case d.raw:
		return Raw(d.Raw)
	case d.Divider:
		return Divider{}
	case d.Header:
		return Header{
			Label:      d.Label,
			Encode:     d.Encode,
			Icon:       d.Icon,
			Attributes: d.Attributes,
			Hidden:     hidden,
		}
	case len(d.Items) > 0:
		return Submenu{
			Label:             d.Label,
			URL:               d.URL,
			Active:            d.Active,
			Disabled:          d.Disabled,
			Icon:              d.Icon,
			Encode:            d.Encode,
			Attributes:        d.Attributes,
			Items:             Items(d.Items),
			SubmenuAttributes: d.SubmenuAttributes,
			Nested:            d.Submenu,
			Hidden:            hidden,
		}
	default:
		return Link{
			Label:      d.Label,
			URL:        d.URL,
			Active:     d.Active,
			Disabled:   d.Disabled,
			Icon:       d.Icon,
			Verbatim:   d.Enclose != nil && !*d.Enclose,
			Encode:     d.Encode,
			Attributes: d.Attributes,
			Hidden:     hidden,
		}
	}
}

// Items converts a list of descriptors.
func Items(ds []Descriptor) []Item {
	if len(ds) == 0 {
		return nil
	}

	items := make([]Item, len(ds))
	for i, d := range ds {
		items[i] = d.Item()
	}

	return items
}

// Build converts a list of descriptors and validates the resulting tree.
func Build(ds []Descriptor) ([]Item, error) {
	items := Items(ds)

	if err := Validate(items); err != nil {
		return nil, err
	}

	return items, nil
}
