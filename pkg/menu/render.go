package menu

import (
	"strings"

	"github.com/GoBulma/GoBulma/pkg/html"
	"github.com/GoBulma/GoBulma/pkg/widget"
)

const (
	// DefaultDisabledStyle is the inline style of disabled items.
	DefaultDisabledStyle = "opacity:.65;pointer-events:none;"

	// TriggerIDSuffix is appended to a popup id to name its trigger, unless the trigger has an id.
	TriggerIDSuffix = "-trigger"
)

// Context carries everything a render needs besides the items.
type Context struct {
	// CurrentPath is matched against item urls when ActivateItems is set.
	CurrentPath     string
	ActivateItems   bool
	ActivateParents bool

	// DefaultURL replaces an empty link url. With an empty DefaultURL such links render as headers.
	DefaultURL string

	ItemCSSClass    string
	DividerCSSClass string
	HeaderTag       string
	HeaderCSSClass  string
	ActiveCSSClass  string
	DisabledStyle   string

	// SubmenuAttributes are the base attributes of every popup container. A submenu passes its merged
	// attributes, without id, down to its children.
	SubmenuAttributes html.Attributes

	IDs      widget.IDAllocator
	IDPrefix string
	IDSuffix string

	// Container wraps a submenu. DefaultContainer is used when nil.
	Container ContainerFunc
}

// Popup is what a ContainerFunc gets to build the markup of one submenu.
type Popup struct {
	// ID of the popup element, referenced by the trigger.
	ID string
	// Depth is 0 for submenus of the rendered list, 1 for their children and so on.
	Depth    int
	Nested   bool
	Label    string
	URL      string
	Active   bool
	Disabled bool
	// TriggerAttributes are the submenu's own attributes, undecorated.
	TriggerAttributes html.Attributes
	// Attributes of the popup container, without id.
	Attributes html.Attributes
	// Content is the rendered children.
	Content string
}

// ContainerFunc renders a submenu trigger and its popup.
type ContainerFunc func(ctx Context, p Popup) string

// Render validates items and renders them in order, one fragment per line.
// An empty or fully hidden list renders as the empty string.
func Render(items []Item, ctx Context) (string, error) {
	if err := Validate(items); err != nil {
		return "", err
	}

	resolved, _ := ctx.resolveActive(items)

	return ctx.render(resolved, 0), nil
}

func (c Context) render(items []Item, depth int) string {
	lines := make([]string, 0, len(items))

	for _, it := range items {
		if !Visible(it) {
			continue
		}

		lines = append(lines, c.renderItem(it, depth))
	}

	return strings.Join(lines, "\n")
}

func (c Context) renderItem(it Item, depth int) string {
	switch v := it.(type) {
	case Divider:
		return c.divider()
	case Raw:
		return string(v)
	case Header:
		return c.header(Label(v.Label, v.Encode, v.Icon), v.Attributes)
	case Link:
		return c.link(v)
	case Submenu:
		if !HasVisible(v.Items) {
			return c.link(v.asLink())
		}

		return c.submenu(v, depth)
	}

	return ""
}

func (c Context) divider() string {
	return html.Void("hr", html.Attributes{}.AddClass(c.DividerCSSClass))
}

func (c Context) header(label string, attrs html.Attributes) string {
	tag := c.HeaderTag
	if tag == "" {
		tag = "h6"
	}

	return html.Tag(tag, attrs.AddClass(c.HeaderCSSClass), label)
}

func (c Context) link(l Link) string {
	label := Label(l.Label, l.Encode, l.Icon)

	if l.Verbatim {
		return label
	}

	url := c.url(l.URL)
	if url == "" {
		return c.header(label, nil)
	}

	attrs := c.Decorate(l.Attributes.AddClass(c.ItemCSSClass), l.Active, l.Disabled)

	return html.Tag("a", attrs.Set("href", url), label)
}

func (c Context) submenu(s Submenu, depth int) string {
	attrs := c.SubmenuAttributes.Merge(s.SubmenuAttributes)
	explicit, _ := attrs.Get("id")

	id := explicit
	if id == "" {
		id = widget.ResolveID(c.IDs, "", c.IDPrefix) + c.IDSuffix
	}

	// descendants inherit the merged attributes, siblings do not
	children := c
	children.SubmenuAttributes = attrs.Delete("id")

	p := Popup{
		ID:                id,
		Depth:             depth,
		Nested:            s.Nested,
		Label:             Label(s.Label, s.Encode, s.Icon),
		URL:               c.url(s.URL),
		Active:            s.Active,
		Disabled:          s.Disabled,
		TriggerAttributes: s.Attributes.Clone(),
		Attributes:        attrs.Delete("id"),
		Content:           children.render(s.Items, depth+1),
	}

	container := c.Container
	if container == nil {
		container = DefaultContainer
	}

	return container(c, p)
}

func (c Context) url(u string) string {
	if u == "" {
		return c.DefaultURL
	}

	return u
}

// Decorate applies the disabled or active state to attrs. Disabled wins: a disabled item never
// carries the active class.
func (c Context) Decorate(attrs html.Attributes, active, disabled bool) html.Attributes {
	switch {
	case disabled:
		style := c.DisabledStyle
		if style == "" {
			style = DefaultDisabledStyle
		}

		return attrs.AddStyle(style).Set("aria-disabled", "true").Set("tabindex", "-1")
	case active:
		return attrs.AddClass(c.ActiveCSSClass)
	default:
		return attrs.Clone()
	}
}

// Label returns the label, encoded on request, prefixed with the icon fragment.
func Label(label string, encode bool, icon Icon) string {
	if encode {
		label = html.Encode(label)
	}

	if icon.IsZero() {
		return label
	}

	return IconTag(icon) + label
}

// IconTag renders <span attributes><i class>text</i></span>.
func IconTag(icon Icon) string {
	i := html.Tag("i", html.Attributes{}.AddClass(icon.CSSClass), icon.Text)

	return html.Tag("span", icon.Attributes, i)
}

// TriggerID returns the id attribute of a trigger, or one derived from the id of its popup.
func TriggerID(popupID string, trigger html.Attributes) string {
	if id, ok := trigger.Get("id"); ok && id != "" {
		return id
	}

	return popupID + TriggerIDSuffix
}

// DefaultContainer renders a link trigger followed by a div popup:
//
//	<a id="id-trigger" class="item" href="#" aria-haspopup="true" aria-controls="id">Label</a>
//	<div id="id" aria-labelledby="id-trigger">...</div>
func DefaultContainer(ctx Context, p Popup) string {
	url := p.URL
	if url == "" {
		url = "#"
	}

	tid := TriggerID(p.ID, p.TriggerAttributes)

	trigger := ctx.Decorate(p.TriggerAttributes.Set("id", tid).AddClass(ctx.ItemCSSClass), p.Active, p.Disabled).
		Set("href", url).
		Set("aria-haspopup", "true").
		Set("aria-controls", p.ID)

	popup := p.Attributes.Set("id", p.ID).Set("aria-labelledby", tid)

	return html.Tag("a", trigger, p.Label) + "\n" + html.Tag("div", popup, "\n"+p.Content+"\n")
}
