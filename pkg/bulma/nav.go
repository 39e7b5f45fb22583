package bulma

import (
	"github.com/GoBulma/GoBulma/pkg/html"
	"github.com/GoBulma/GoBulma/pkg/menu"
	"github.com/GoBulma/GoBulma/pkg/widget"
)

// Nav renders the items of a navbar.
//
// See https://bulma.io/documentation/components/navbar/#basic-navbar
type Nav struct {
	widget.Widget

	items             []menu.Item
	submenuAttributes html.Attributes

	currentPath     string
	noActivateItems bool
	activateParents bool

	hasDropdownCSSClass    string
	isHoverableCSSClass    string
	navBarDropdownCSSClass string
	navBarItemCSSClass     string
	navBarLinkCSSClass     string
	navBarDividerCSSClass  string
	activeCSSClass         string
	disabledStyle          string
}

// NewNav returns a nav with Bulma's default classes.
func NewNav() Nav {
	return Nav{
		Widget:                 widget.New(),
		hasDropdownCSSClass:    "has-dropdown",
		isHoverableCSSClass:    "is-hoverable",
		navBarDropdownCSSClass: "navbar-dropdown",
		navBarItemCSSClass:     "navbar-item",
		navBarLinkCSSClass:     "navbar-link",
		navBarDividerCSSClass:  "navbar-divider",
		activeCSSClass:         "is-active",
		disabledStyle:          menu.DefaultDisabledStyle,
	}
}

// WithAttributes sets the attributes added to the container of every top level submenu.
func (n Nav) WithAttributes(a html.Attributes) Nav {
	n.Widget = n.Widget.WithAttributes(a)
	return n
}

// WithAutoIDPrefix sets the prefix of generated submenu ids.
func (n Nav) WithAutoIDPrefix(prefix string) Nav {
	n.Widget = n.Widget.WithAutoIDPrefix(prefix)
	return n
}

// WithIDAllocator sets the allocator of generated submenu ids.
func (n Nav) WithIDAllocator(ids widget.IDAllocator) Nav {
	n.Widget = n.Widget.WithIDAllocator(ids)
	return n
}

// WithItems sets the items.
func (n Nav) WithItems(items []menu.Item) Nav {
	n.items = append([]menu.Item(nil), items...)
	return n
}

// WithSubmenuAttributes sets the base attributes of every submenu popup.
func (n Nav) WithSubmenuAttributes(a html.Attributes) Nav {
	n.submenuAttributes = a.Clone()
	return n
}

// WithCurrentPath sets the path items are matched against, usually the request path.
func (n Nav) WithCurrentPath(path string) Nav {
	n.currentPath = path
	return n
}

// WithoutActivateItems disables matching items against the current path.
func (n Nav) WithoutActivateItems() Nav {
	n.noActivateItems = true
	return n
}

// WithActivateParents marks submenus active when one of their children is.
func (n Nav) WithActivateParents() Nav {
	n.activateParents = true
	return n
}

// WithHasDropdownCSSClass sets the class marking a top level item holding a submenu.
func (n Nav) WithHasDropdownCSSClass(class string) Nav {
	n.hasDropdownCSSClass = class
	return n
}

// WithIsHoverableCSSClass sets the class opening top level submenus on hover.
func (n Nav) WithIsHoverableCSSClass(class string) Nav {
	n.isHoverableCSSClass = class
	return n
}

// WithNavBarDropdownCSSClass sets the class of submenu popups.
func (n Nav) WithNavBarDropdownCSSClass(class string) Nav {
	n.navBarDropdownCSSClass = class
	return n
}

// WithNavBarItemCSSClass sets the class of links, headers and top level wrappers.
func (n Nav) WithNavBarItemCSSClass(class string) Nav {
	n.navBarItemCSSClass = class
	return n
}

// WithNavBarLinkCSSClass sets the class of top level submenu triggers.
func (n Nav) WithNavBarLinkCSSClass(class string) Nav {
	n.navBarLinkCSSClass = class
	return n
}

// WithNavBarDividerCSSClass sets the class of dividers.
func (n Nav) WithNavBarDividerCSSClass(class string) Nav {
	n.navBarDividerCSSClass = class
	return n
}

// WithActiveCSSClass sets the class added to active items.
func (n Nav) WithActiveCSSClass(class string) Nav {
	n.activeCSSClass = class
	return n
}

// WithDisabledStyle sets the inline style of disabled items.
func (n Nav) WithDisabledStyle(style string) Nav {
	n.disabledStyle = style
	return n
}

// Render returns the items one per line. Links without url point to "#".
func (n Nav) Render() (string, error) {
	return menu.Render(n.items, menu.Context{
		CurrentPath:       n.currentPath,
		ActivateItems:     !n.noActivateItems,
		ActivateParents:   n.activateParents,
		DefaultURL:        "#",
		ItemCSSClass:      n.navBarItemCSSClass,
		DividerCSSClass:   n.navBarDividerCSSClass,
		HeaderTag:         "div",
		HeaderCSSClass:    n.navBarItemCSSClass,
		ActiveCSSClass:    n.activeCSSClass,
		DisabledStyle:     n.disabledStyle,
		SubmenuAttributes: n.submenuAttributes,
		IDs:               n.IDs(),
		IDPrefix:          n.AutoIDPrefix(),
		IDSuffix:          dropdownIDSuffix,
		Container:         n.container,
	})
}

func (n Nav) container(ctx menu.Context, p menu.Popup) string {
	if p.Depth > 0 {
		return dropdownClasses{
			container: "dropdown",
			trigger:   "dropdown-trigger",
			menu:      "dropdown-menu",
			content:   n.navBarDropdownCSSClass,
		}.nested(ctx, p)
	}

	tid := menu.TriggerID(p.ID, p.TriggerAttributes)

	link := ctx.Decorate(p.TriggerAttributes.Set("id", tid).AddClass(n.navBarLinkCSSClass), p.Active, p.Disabled).
		Set("href", p.URL).
		Set("aria-haspopup", "true").
		Set("aria-controls", p.ID)

	popup := p.Attributes.Set("id", p.ID).AddClass(n.navBarDropdownCSSClass).Set("aria-labelledby", tid)

	wrapper := n.Attributes().AddClass(n.navBarItemCSSClass, n.hasDropdownCSSClass, n.isHoverableCSSClass)

	return html.Tag(
		"div",
		wrapper,
		"\n"+html.Tag("a", link, p.Label)+"\n"+html.Tag("div", popup, "\n"+p.Content+"\n")+"\n",
	)
}
