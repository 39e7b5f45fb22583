package bulma

import (
	"strings"

	"github.com/GoBulma/GoBulma/pkg/html"
	"github.com/GoBulma/GoBulma/pkg/widget"
)

const navBarIDSuffix = "-navbar"

// NavBar renders the frame of a navbar: the nav element, the brand and the burger.
// Items go between Begin and End, usually rendered by Nav.
//
// See https://bulma.io/documentation/components/navbar/
type NavBar struct {
	widget.Widget

	brandAttributes      html.Attributes
	brandImage           string
	brandImageAttributes html.Attributes
	brandText            string
	brandTextAttributes  html.Attributes
	brandURL             string

	burgerAttributes   html.Attributes
	burgerAriaExpanded string
	burgerAriaLabel    string
	burgerContent      string
	burgerRole         string

	ariaLabel          string
	role               string
	brandCSSClass      string
	burgerCSSClass     string
	navBarCSSClass     string
	navBarItemCSSClass string
}

// NewNavBar returns a navbar with Bulma's default classes, a brand linking to "/" and a burger.
func NewNavBar() NavBar {
	return NavBar{
		Widget:             widget.New(),
		brandURL:           "/",
		burgerAriaExpanded: "false",
		burgerAriaLabel:    "menu",
		burgerRole:         "button",
		ariaLabel:          "main navigation",
		role:               "navigation",
		brandCSSClass:      "navbar-brand",
		burgerCSSClass:     "navbar-burger",
		navBarCSSClass:     "navbar",
		navBarItemCSSClass: "navbar-item",
	}
}

// WithAttributes sets the attributes of the nav element. An id attribute replaces the generated id.
func (n NavBar) WithAttributes(a html.Attributes) NavBar {
	n.Widget = n.Widget.WithAttributes(a)
	return n
}

// WithID sets the widget id; the element id is the widget id followed by "-navbar".
func (n NavBar) WithID(id string) NavBar {
	n.Widget = n.Widget.WithID(id)
	return n
}

// WithAutoIDPrefix sets the prefix of the generated id.
func (n NavBar) WithAutoIDPrefix(prefix string) NavBar {
	n.Widget = n.Widget.WithAutoIDPrefix(prefix)
	return n
}

// WithIDAllocator sets the allocator of the generated id.
func (n NavBar) WithIDAllocator(ids widget.IDAllocator) NavBar {
	n.Widget = n.Widget.WithIDAllocator(ids)
	return n
}

// WithBrandAttributes sets the attributes of the navbar-brand div.
func (n NavBar) WithBrandAttributes(a html.Attributes) NavBar {
	n.brandAttributes = a.Clone()
	return n
}

// WithBrandImage sets the src of the brand image.
func (n NavBar) WithBrandImage(src string) NavBar {
	n.brandImage = src
	return n
}

// WithBrandImageAttributes sets the attributes of the brand image.
func (n NavBar) WithBrandImageAttributes(a html.Attributes) NavBar {
	n.brandImageAttributes = a.Clone()
	return n
}

// WithBrandText sets the brand text. It is not encoded.
func (n NavBar) WithBrandText(text string) NavBar {
	n.brandText = text
	return n
}

// WithBrandTextAttributes sets the attributes of the brand when it renders as a span.
func (n NavBar) WithBrandTextAttributes(a html.Attributes) NavBar {
	n.brandTextAttributes = a.Clone()
	return n
}

// WithBrandURL sets the brand link. With an empty url a text brand renders as a span.
func (n NavBar) WithBrandURL(url string) NavBar {
	n.brandURL = url
	return n
}

// WithBurgerAttributes sets the attributes of the burger, e.g. data-target.
func (n NavBar) WithBurgerAttributes(a html.Attributes) NavBar {
	n.burgerAttributes = a.Clone()
	return n
}

// WithBurgerAriaExpanded sets aria-expanded of the burger.
func (n NavBar) WithBurgerAriaExpanded(v string) NavBar {
	n.burgerAriaExpanded = v
	return n
}

// WithBurgerAriaLabel sets aria-label of the burger.
func (n NavBar) WithBurgerAriaLabel(v string) NavBar {
	n.burgerAriaLabel = v
	return n
}

// WithBurgerContent replaces the three spans of the burger.
func (n NavBar) WithBurgerContent(content string) NavBar {
	n.burgerContent = content
	return n
}

// WithBurgerRole sets the role of the burger.
func (n NavBar) WithBurgerRole(role string) NavBar {
	n.burgerRole = role
	return n
}

// WithAriaLabel sets aria-label of the nav element.
func (n NavBar) WithAriaLabel(label string) NavBar {
	n.ariaLabel = label
	return n
}

// WithRole sets the role of the nav element.
func (n NavBar) WithRole(role string) NavBar {
	n.role = role
	return n
}

// WithBrandCSSClass sets the class of the brand container.
func (n NavBar) WithBrandCSSClass(class string) NavBar {
	n.brandCSSClass = class
	return n
}

// WithBurgerCSSClass sets the class of the burger.
func (n NavBar) WithBurgerCSSClass(class string) NavBar {
	n.burgerCSSClass = class
	return n
}

// WithNavBarCSSClass sets the class of the nav element.
func (n NavBar) WithNavBarCSSClass(class string) NavBar {
	n.navBarCSSClass = class
	return n
}

// WithNavBarItemCSSClass sets the class of the brand item.
func (n NavBar) WithNavBarItemCSSClass(class string) NavBar {
	n.navBarItemCSSClass = class
	return n
}

// Begin opens the nav element and renders the brand.
func (n NavBar) Begin() string {
	attrs := n.Attributes().AddClass(n.navBarCSSClass)

	if id, _ := attrs.Get("id"); id == "" {
		attrs = attrs.Set("id", n.ID()+navBarIDSuffix)
	}

	attrs = attrs.Set("aria-label", n.ariaLabel).Set("role", n.role)

	return html.Open("nav", attrs) + "\n" + n.brand() + "\n"
}

// End closes the nav element.
func (n NavBar) End() string {
	return html.Close("nav")
}

// Render wraps content between Begin and End.
func (n NavBar) Render(content string) string {
	var b strings.Builder

	b.WriteString(n.Begin())

	if content != "" {
		b.WriteString(content)
		b.WriteString("\n")
	}

	b.WriteString(n.End())

	return b.String()
}

func (n NavBar) brand() string {
	brand := ""
	image := ""
	item := html.Attributes{}.AddClass(n.navBarItemCSSClass)

	if n.brandImage != "" {
		image = html.Void("img", n.brandImageAttributes.Set("src", n.brandImage))
		brand = "\n" + html.Tag("a", item.Set("href", n.brandURL), image)
	}

	if n.brandText != "" {
		text := image + n.brandText

		if n.brandURL == "" {
			brand = "\n" + html.Tag("span", n.brandTextAttributes.AddClass(n.navBarItemCSSClass), text)
		} else {
			brand = "\n" + html.Tag("a", item.Set("href", n.brandURL), text)
		}
	}

	return html.Tag("div", n.brandAttributes.AddClass(n.brandCSSClass), brand+n.burger())
}

func (n NavBar) burger() string {
	content := n.burgerContent
	if content == "" {
		span := html.Tag("span", html.Attrs("aria-hidden", "true"), "")
		content = "\n" + strings.Repeat(span+"\n", 3)
	}

	attrs := n.burgerAttributes.
		AddClass(n.burgerCSSClass).
		Set("aria-expanded", n.burgerAriaExpanded).
		Set("aria-label", n.burgerAriaLabel).
		Set("role", n.burgerRole)

	return "\n" + html.Tag("a", attrs, content) + "\n"
}
