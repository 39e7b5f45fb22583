package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoBulma/GoBulma/pkg/menu"
)

func TestNewContext(t *testing.T) {
	ctx := NewContext("Test Page", "section1", "page1")

	assert.Equal(t, "Test Page", ctx.PageTitle)
	assert.Equal(t, "section1", ctx.ActiveSection)
	assert.Equal(t, "page1", ctx.ActivePage)
	assert.NotNil(t, ctx.Breadcrumbs)
	assert.Empty(t, ctx.Breadcrumbs)
}

func TestContext_AddBreadcrumb(t *testing.T) {
	ctx := NewContext("Test Page", "section1", "page1")

	// Add first breadcrumb
	ctx.AddBreadcrumb("Home", "/", false)
	assert.Len(t, ctx.Breadcrumbs, 1)
	assert.Equal(t, "Home", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "/", ctx.Breadcrumbs[0].URL)
	assert.False(t, ctx.Breadcrumbs[0].Active)

	// Add second breadcrumb
	ctx.AddBreadcrumb("Preview", "/preview", false)
	assert.Len(t, ctx.Breadcrumbs, 2)
	assert.Equal(t, "Preview", ctx.Breadcrumbs[1].Title)

	// Add active breadcrumb
	ctx.AddBreadcrumb("Current Page", "/preview/page", true)
	assert.Len(t, ctx.Breadcrumbs, 3)
	assert.True(t, ctx.Breadcrumbs[2].Active)
}

func TestContext_AddBreadcrumb_Chaining(t *testing.T) {
	ctx := NewContext("Test Page", "section1", "page1").
		AddBreadcrumb("Home", "/", false).
		AddBreadcrumb("Preview", "/preview", false).
		AddBreadcrumb("Current", "/preview/current", true)

	assert.Len(t, ctx.Breadcrumbs, 3)
	assert.Equal(t, "Home", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "Preview", ctx.Breadcrumbs[1].Title)
	assert.Equal(t, "Current", ctx.Breadcrumbs[2].Title)
	assert.True(t, ctx.Breadcrumbs[2].Active)
}

func TestContext_IsActive(t *testing.T) {
	ctx := NewContext("Test Page", "preview", "account")

	// Should return true when both section and page match
	assert.True(t, ctx.IsActive("preview", "account"))

	// Should return false when section doesn't match
	assert.False(t, ctx.IsActive("index", "account"))

	// Should return false when page doesn't match
	assert.False(t, ctx.IsActive("preview", "site"))

	// Should return false when neither match
	assert.False(t, ctx.IsActive("index", "main"))
}

func TestContext_IsSectionActive(t *testing.T) {
	ctx := NewContext("Test Page", "preview", "account")

	// Should return true when section matches
	assert.True(t, ctx.IsSectionActive("preview"))

	// Should return false when section doesn't match
	assert.False(t, ctx.IsSectionActive("index"))
	assert.False(t, ctx.IsSectionActive("admin"))
}

func TestBreadcrumbItem(t *testing.T) {
	item := BreadcrumbItem{
		Title:  "Test",
		URL:    "/test",
		Active: true,
	}

	assert.Equal(t, "Test", item.Title)
	assert.Equal(t, "/test", item.URL)
	assert.True(t, item.Active)
}

func TestContext_BreadcrumbHTML(t *testing.T) {
	assert.Empty(t, NewContext("Empty", "", "").BreadcrumbHTML())

	ctx := NewContext("Account", "preview", "account").
		AddBreadcrumb("Home", "/", false).
		AddBreadcrumb("A & B", "/preview/account", true)

	expected := `<nav class="breadcrumb" aria-label="breadcrumbs">
<ul>
<li><a href="/">Home</a></li>
<li class="is-active"><a href="/preview/account" aria-current="page">A &amp; B</a></li>
</ul>
</nav>`
	assert.Equal(t, expected, ctx.BreadcrumbHTML())
}

func TestMenu(t *testing.T) {
	items := Menu("/", []Page{
		{Title: "Account", URL: "/preview/account", Section: "dropdown"},
		{Title: "About", URL: "/about"},
		{Title: "Actions", URL: "/preview/actions", Section: "dropdown"},
		{Title: "Notice", URL: "/preview/notice", Section: "message"},
	})

	expected := []menu.Item{
		menu.Link{Label: "Home", URL: "/"},
		menu.Submenu{Label: "dropdown", Encode: true, Items: []menu.Item{
			menu.Link{Label: "Account", URL: "/preview/account", Encode: true},
			menu.Link{Label: "Actions", URL: "/preview/actions", Encode: true},
		}},
		menu.Link{Label: "About", URL: "/about", Encode: true},
		menu.Submenu{Label: "message", Encode: true, Items: []menu.Item{
			menu.Link{Label: "Notice", URL: "/preview/notice", Encode: true},
		}},
	}
	assert.Equal(t, expected, items)
	assert.NoError(t, menu.Validate(items))
}

func TestMenu_Empty(t *testing.T) {
	assert.Equal(t, []menu.Item{menu.Link{Label: "Home", URL: "/"}}, Menu("/", nil))
}
