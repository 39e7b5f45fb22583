package menu

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/GoBulma/GoBulma/pkg/html"
)

func decode(t *testing.T, data []byte) []Descriptor {
	t.Helper()

	var ds []Descriptor
	require.NoError(t, yaml.Unmarshal(data, &ds))

	return ds
}

func TestBuild(t *testing.T) {
	data := []byte(`
- label: Item
  url: "#"
- divider: true
- "-"
- <p>markup</p>
- label: Options
  header: true
- label: Hidden
  url: /hidden
  visible: false
- label: <hr>
  enclose: false
- label: Docs
  submenu: true
  submenuAttributes:
    id: docs
    class: is-right
  items:
    - label: Overview
      url: /docs
      active: true
      icon:
        class: fas fa-book
        attributes:
          class: icon
`)

	items, err := Build(decode(t, data))
	require.NoError(t, err)
	require.Len(t, items, 8)

	assert.Equal(t, Link{Label: "Item", URL: "#"}, items[0])
	assert.Equal(t, Divider{}, items[1])
	assert.Equal(t, Raw("-"), items[2])
	assert.Equal(t, Raw("<p>markup</p>"), items[3])
	assert.Equal(t, Header{Label: "Options"}, items[4])
	assert.Equal(t, Link{Label: "Hidden", URL: "/hidden", Hidden: true}, items[5])
	assert.Equal(t, Link{Label: "<hr>", Verbatim: true}, items[6])

	sub, ok := items[7].(Submenu)
	require.True(t, ok)
	assert.True(t, sub.Nested)
	assert.Equal(t, html.Attrs("id", "docs", "class", "is-right"), sub.SubmenuAttributes)
	assert.Equal(t, []Item{Link{
		Label:  "Overview",
		URL:    "/docs",
		Active: true,
		Icon:   Icon{CSSClass: "fas fa-book", Attributes: html.Attrs("class", "icon")},
	}}, sub.Items)
}

func TestBuild_MissingLabel(t *testing.T) {
	items, err := Build(decode(t, []byte("- url: '#test'\n")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingLabel))
	assert.Nil(t, items)
}

func TestBuild_Empty(t *testing.T) {
	items, err := Build(nil)
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestDescriptor_NotAMapping(t *testing.T) {
	var ds []Descriptor
	assert.Error(t, yaml.Unmarshal([]byte("label: not a list\n"), &ds))
}

func TestRawDescriptor(t *testing.T) {
	assert.Equal(t, Raw("<b>x</b>"), RawDescriptor("<b>x</b>").Item())
}
