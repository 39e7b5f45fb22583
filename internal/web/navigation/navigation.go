// Package navigation provides utilities for managing navigation state, breadcrumbs and the site menu
// of the preview pages.
package navigation

import (
	"strings"

	"github.com/GoBulma/GoBulma/pkg/html"
	"github.com/GoBulma/GoBulma/pkg/menu"
)

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	PageTitle     string
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}

// BreadcrumbHTML renders the breadcrumbs as a Bulma breadcrumb, empty without breadcrumbs.
// Titles are encoded.
func (c *Context) BreadcrumbHTML() string {
	if len(c.Breadcrumbs) == 0 {
		return ""
	}

	lines := make([]string, 0, len(c.Breadcrumbs))

	for _, b := range c.Breadcrumbs {
		link := html.Attrs("href", b.URL)
		li := html.Attributes(nil)

		if b.Active {
			link = link.Set("aria-current", "page")
			li = html.Attrs("class", "is-active")
		}

		lines = append(lines, html.Tag("li", li, html.Tag("a", link, html.Encode(b.Title))))
	}

	list := html.Tag("ul", nil, "\n"+strings.Join(lines, "\n")+"\n")

	return html.Tag("nav", html.Attrs("class", "breadcrumb", "aria-label", "breadcrumbs"), "\n"+list+"\n")
}

// Page is an entry of the site menu.
type Page struct {
	Title   string
	URL     string
	Section string // submenu label, empty for top level links
}

// Menu returns the site menu: a link to home followed by the pages. Pages sharing a section are grouped into
// one submenu, placed where the section first appears.
func Menu(home string, pages []Page) []menu.Item {
	items := []menu.Item{menu.Link{Label: "Home", URL: home}}
	sections := make(map[string]int)

	for _, p := range pages {
		link := menu.Link{Label: p.Title, URL: p.URL, Encode: true}

		if p.Section == "" {
			items = append(items, link)
			continue
		}

		i, ok := sections[p.Section]
		if !ok {
			sections[p.Section] = len(items)
			items = append(items, menu.Submenu{Label: p.Section, Encode: true, Items: []menu.Item{link}})

			continue
		}

		sub := items[i].(menu.Submenu) //nolint:forcetypeassert // only submenus are indexed
		sub.Items = append(sub.Items, link)
		items[i] = sub
	}

	return items
}
