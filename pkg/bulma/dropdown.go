// Package bulma renders Bulma components: Dropdown, Nav, NavBar and Message.
//
// Components are values configured through With methods, each returning a new value:
//
//	html, err := bulma.NewDropdown().
//		WithButtonLabel("Account").
//		WithItems([]menu.Item{menu.Link{Label: "Profile", URL: "/profile"}}).
//		Render()
package bulma

import (
	"github.com/GoBulma/GoBulma/pkg/html"
	"github.com/GoBulma/GoBulma/pkg/menu"
	"github.com/GoBulma/GoBulma/pkg/widget"
)

const dropdownIDSuffix = "-dropdown"

// Dropdown is a button toggling a menu of items.
//
// See https://bulma.io/documentation/components/dropdown/
type Dropdown struct {
	widget.Widget

	buttonAttributes      html.Attributes
	buttonIconAttributes  html.Attributes
	buttonIconCSSClass    string
	buttonIconText        string
	buttonLabel           string
	buttonLabelAttributes html.Attributes

	dividerCSSClass    string
	contentCSSClass    string
	menuCSSClass       string
	triggerCSSClass    string
	itemCSSClass       string
	itemActiveCSSClass string
	itemHeaderCSSClass string
	itemDisabledStyle  string

	items             []menu.Item
	submenuAttributes html.Attributes
	withoutContainer  bool

	currentPath     string
	noActivateItems bool
	activateParents bool
}

// NewDropdown returns a dropdown with Bulma's default classes.
func NewDropdown() Dropdown {
	return Dropdown{
		Widget:               widget.New(),
		buttonIconAttributes: html.Attrs("class", "icon is-small"),
		buttonIconText:       "&#8595;",
		buttonLabel:          "Click Me",
		dividerCSSClass:      "dropdown-divider",
		contentCSSClass:      "dropdown-content",
		menuCSSClass:         "dropdown-menu",
		triggerCSSClass:      "dropdown-trigger",
		itemCSSClass:         "dropdown-item",
		itemActiveCSSClass:   "is-active",
		itemHeaderCSSClass:   "dropdown-header",
		itemDisabledStyle:    menu.DefaultDisabledStyle,
	}
}

// WithAttributes sets the attributes of the outer container. An id attribute replaces the generated id.
func (d Dropdown) WithAttributes(a html.Attributes) Dropdown {
	d.Widget = d.Widget.WithAttributes(a)
	return d
}

// WithID sets the widget id; the element id is the widget id followed by "-dropdown".
func (d Dropdown) WithID(id string) Dropdown {
	d.Widget = d.Widget.WithID(id)
	return d
}

// WithAutoIDPrefix sets the prefix of generated ids.
func (d Dropdown) WithAutoIDPrefix(prefix string) Dropdown {
	d.Widget = d.Widget.WithAutoIDPrefix(prefix)
	return d
}

// WithIDAllocator sets the allocator of generated ids.
func (d Dropdown) WithIDAllocator(ids widget.IDAllocator) Dropdown {
	d.Widget = d.Widget.WithIDAllocator(ids)
	return d
}

// WithButtonAttributes sets the attributes of the toggle button.
func (d Dropdown) WithButtonAttributes(a html.Attributes) Dropdown {
	d.buttonAttributes = a.Clone()
	return d
}

// WithButtonIconAttributes sets the attributes of the span around the button icon.
func (d Dropdown) WithButtonIconAttributes(a html.Attributes) Dropdown {
	d.buttonIconAttributes = a.Clone()
	return d
}

// WithButtonIconCSSClass sets the class of the button icon, e.g. "fas fa-angle-down".
func (d Dropdown) WithButtonIconCSSClass(class string) Dropdown {
	d.buttonIconCSSClass = class
	return d
}

// WithButtonIconText sets the text of the button icon. It is not encoded.
func (d Dropdown) WithButtonIconText(text string) Dropdown {
	d.buttonIconText = text
	return d
}

// WithButtonLabel sets the button label. It is not encoded.
func (d Dropdown) WithButtonLabel(label string) Dropdown {
	d.buttonLabel = label
	return d
}

// WithButtonLabelAttributes sets the attributes of the span around the button label.
func (d Dropdown) WithButtonLabelAttributes(a html.Attributes) Dropdown {
	d.buttonLabelAttributes = a.Clone()
	return d
}

// WithDividerCSSClass sets the class of dividers.
func (d Dropdown) WithDividerCSSClass(class string) Dropdown {
	d.dividerCSSClass = class
	return d
}

// WithContentCSSClass sets the class of the box holding the items.
func (d Dropdown) WithContentCSSClass(class string) Dropdown {
	d.contentCSSClass = class
	return d
}

// WithMenuCSSClass sets the class of the toggled menu.
func (d Dropdown) WithMenuCSSClass(class string) Dropdown {
	d.menuCSSClass = class
	return d
}

// WithTriggerCSSClass sets the class of the element around the button.
func (d Dropdown) WithTriggerCSSClass(class string) Dropdown {
	d.triggerCSSClass = class
	return d
}

// WithItemCSSClass sets the class of item links.
func (d Dropdown) WithItemCSSClass(class string) Dropdown {
	d.itemCSSClass = class
	return d
}

// WithItemActiveCSSClass sets the class added to active items.
func (d Dropdown) WithItemActiveCSSClass(class string) Dropdown {
	d.itemActiveCSSClass = class
	return d
}

// WithItemHeaderCSSClass sets the class of headers.
func (d Dropdown) WithItemHeaderCSSClass(class string) Dropdown {
	d.itemHeaderCSSClass = class
	return d
}

// WithItemDisabledStyle sets the inline style of disabled items.
func (d Dropdown) WithItemDisabledStyle(style string) Dropdown {
	d.itemDisabledStyle = style
	return d
}

// WithItems sets the items of the menu.
func (d Dropdown) WithItems(items []menu.Item) Dropdown {
	d.items = append([]menu.Item(nil), items...)
	return d
}

// WithSubmenuAttributes sets the base attributes of every submenu container.
func (d Dropdown) WithSubmenuAttributes(a html.Attributes) Dropdown {
	d.submenuAttributes = a.Clone()
	return d
}

// WithoutContainer renders the items only, without button and menu.
func (d Dropdown) WithoutContainer() Dropdown {
	d.withoutContainer = true
	return d
}

// WithCurrentPath sets the path items are matched against.
func (d Dropdown) WithCurrentPath(path string) Dropdown {
	d.currentPath = path
	return d
}

// WithoutActivateItems disables matching items against the current path.
func (d Dropdown) WithoutActivateItems() Dropdown {
	d.noActivateItems = true
	return d
}

// WithActivateParents marks submenus active when one of their children is.
func (d Dropdown) WithActivateParents() Dropdown {
	d.activateParents = true
	return d
}

// Render returns the markup, or an error when an item misses its label.
// A dropdown without visible items renders as the empty string.
func (d Dropdown) Render() (string, error) {
	if err := menu.Validate(d.items); err != nil {
		return "", err
	}

	if !menu.HasVisible(d.items) {
		return "", nil
	}

	ctx := d.context()

	if d.withoutContainer {
		return menu.Render(d.items, ctx)
	}

	attrs := d.Attributes()

	id, _ := attrs.Get("id")
	if id == "" {
		id = d.ID() + dropdownIDSuffix
	}

	content, err := menu.Render(d.items, ctx)
	if err != nil {
		return "", err
	}

	button := d.buttonAttributes.Set("id", menu.TriggerID(id, d.buttonAttributes))

	return d.dropdown(attrs.Delete("id"), id, button, d.buttonLabel, content), nil
}

func (d Dropdown) context() menu.Context {
	return menu.Context{
		CurrentPath:       d.currentPath,
		ActivateItems:     !d.noActivateItems,
		ActivateParents:   d.activateParents,
		ItemCSSClass:      d.itemCSSClass,
		DividerCSSClass:   d.dividerCSSClass,
		HeaderTag:         "h6",
		HeaderCSSClass:    d.itemHeaderCSSClass,
		ActiveCSSClass:    d.itemActiveCSSClass,
		DisabledStyle:     d.itemDisabledStyle,
		SubmenuAttributes: d.submenuAttributes,
		IDs:               d.IDs(),
		IDPrefix:          d.AutoIDPrefix(),
		IDSuffix:          dropdownIDSuffix,
		Container:         d.container,
	}
}

// container renders submenus: nested ones get a link trigger, the others a full dropdown
// whose button shows the submenu label and carries the submenu's own attributes and state.
func (d Dropdown) container(ctx menu.Context, p menu.Popup) string {
	if p.Nested {
		return d.classes().nested(ctx, p)
	}

	button := ctx.Decorate(
		p.TriggerAttributes.Set("id", menu.TriggerID(p.ID, p.TriggerAttributes)).AddClass("button"),
		p.Active,
		p.Disabled,
	)

	return d.dropdown(p.Attributes, p.ID, button, p.Label, p.Content)
}

func (d Dropdown) classes() dropdownClasses {
	return dropdownClasses{
		container: "dropdown",
		trigger:   d.triggerCSSClass,
		menu:      d.menuCSSClass,
		content:   d.contentCSSClass,
	}
}

// dropdown renders the container of the popup id. button holds the attributes of the toggle button,
// its id included.
func (d Dropdown) dropdown(attrs html.Attributes, id string, button html.Attributes, label, content string) string {
	c := d.classes()
	buttonID, _ := button.Get("id")

	trigger := html.Tag("div", html.Attributes{}.AddClass(c.trigger), "\n"+d.button(id, button, label)+"\n")

	return html.Tag(
		"div",
		attrs.AddClass(c.container),
		"\n"+trigger+"\n"+c.popup(id, buttonID, nil, content)+"\n",
	)
}

func (d Dropdown) button(id string, attrs html.Attributes, label string) string {
	attrs = attrs.
		AddClass("button").
		Set("aria-haspopup", "true").
		Set("aria-controls", id)

	inner := ""

	if label != "" {
		inner += "\n" + html.Tag("span", d.buttonLabelAttributes, label)
	}

	if d.buttonIconText != "" || d.buttonIconCSSClass != "" {
		inner += "\n" + menu.IconTag(menu.Icon{
			Text:       d.buttonIconText,
			CSSClass:   d.buttonIconCSSClass,
			Attributes: d.buttonIconAttributes,
		})
	}

	return html.Tag("button", attrs, inner+"\n")
}

// dropdownClasses names the elements of a dropdown structure. Nav reuses it with navbar classes.
type dropdownClasses struct {
	container string
	trigger   string
	menu      string
	content   string
}

// popup renders <div id class=menu aria-labelledby=trigger><div class=content>content</div></div>.
func (c dropdownClasses) popup(id, triggerID string, attrs html.Attributes, content string) string {
	box := html.Tag("div", html.Attributes{}.AddClass(c.content), "\n"+content+"\n")
	attrs = attrs.Set("id", id).AddClass(c.menu).Set("aria-labelledby", triggerID)

	return html.Tag("div", attrs, "\n"+box+"\n")
}

// nested renders a link-triggered submenu.
func (c dropdownClasses) nested(ctx menu.Context, p menu.Popup) string {
	url := p.URL
	if url == "" {
		url = "#"
	}

	tid := menu.TriggerID(p.ID, p.TriggerAttributes)

	link := ctx.Decorate(p.TriggerAttributes.Set("id", tid).AddClass(ctx.ItemCSSClass), p.Active, p.Disabled).
		Set("href", url).
		Set("aria-haspopup", "true").
		Set("aria-controls", p.ID)

	trigger := html.Tag("div", html.Attributes{}.AddClass(c.trigger), "\n"+html.Tag("a", link, p.Label)+"\n")

	return html.Tag(
		"div",
		p.Attributes.AddClass(c.container),
		"\n"+trigger+"\n"+c.popup(p.ID, tid, nil, p.Content)+"\n",
	)
}
