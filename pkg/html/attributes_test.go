package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAttributes_SetKeepsPosition(t *testing.T) {
	a := Attrs("data-a", "1", "data-b", "2")
	b := a.Set("data-a", "3")

	assert.Equal(t, Attributes{{"data-a", "3"}, {"data-b", "2"}}, b)
	// receiver untouched
	assert.Equal(t, Attributes{{"data-a", "1"}, {"data-b", "2"}}, a)
}

func TestAttributes_AddClass(t *testing.T) {
	tests := []struct {
		name    string
		attrs   Attributes
		classes []string
		want    string
	}{
		{"empty", nil, []string{"button"}, "button"},
		{"append", Attrs("class", "is-link"), []string{"button"}, "is-link button"},
		{"no duplicates", Attrs("class", "button"), []string{"button", "is-small"}, "button is-small"},
		{"multi word", nil, []string{"icon is-small"}, "icon is-small"},
		{"skip empty", Attrs("class", "a"), []string{"", "b"}, "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := tt.attrs.AddClass(tt.classes...).Get("class")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAttributes_AddClassNothingToAdd(t *testing.T) {
	assert.False(t, Attributes(nil).AddClass("").Has("class"))
}

func TestAttributes_AddStyle(t *testing.T) {
	a := Attributes{}.AddStyle("opacity:.65;")
	a = a.AddStyle("pointer-events:none;")

	v, _ := a.Get("style")
	assert.Equal(t, "opacity:.65;pointer-events:none;", v)

	b := Attrs("style", "color:red").AddStyle("margin:0;")
	v, _ = b.Get("style")
	assert.Equal(t, "color:red;margin:0;", v)
}

func TestAttributes_Merge(t *testing.T) {
	base := Attrs("class", "dropdown", "data-x", "1")
	got := base.Merge(Attrs("class", "is-right", "data-x", "2", "id", "menu"))

	assert.Equal(t, Attributes{
		{"class", "dropdown is-right"},
		{"data-x", "2"},
		{"id", "menu"},
	}, got)
}

func TestAttributes_Delete(t *testing.T) {
	a := Attrs("id", "x", "class", "y")

	assert.Equal(t, Attributes{{"class", "y"}}, a.Delete("id"))
	assert.True(t, a.Has("id"))
}

func TestAttributes_UnmarshalYAML(t *testing.T) {
	var a Attributes

	err := yaml.Unmarshal([]byte("z: 1\nclass: is-link\nid: test1\n"), &a)
	require.NoError(t, err)
	assert.Equal(t, Attributes{{"z", "1"}, {"class", "is-link"}, {"id", "test1"}}, a)

	err = yaml.Unmarshal([]byte("- a\n- b\n"), &a)
	assert.Error(t, err)
}

func TestRenderAttributes_Order(t *testing.T) {
	a := Attrs("data-id", "t1", "class", "is-link", "id", "test1", "href", "#")

	assert.Equal(t, ` id="test1" class="is-link" href="#" data-id="t1"`, RenderAttributes(a))
}

func TestTag(t *testing.T) {
	assert.Equal(t, `<a class="x" href="/a?b=1&amp;c=2">Hi</a>`,
		Tag("a", Attrs("href", "/a?b=1&c=2", "class", "x"), "Hi"))
	assert.Equal(t, `<hr class="dropdown-divider">`, Void("hr", Attrs("class", "dropdown-divider")))
	assert.Equal(t, `<span></span>`, Tag("span", nil, ""))
	assert.Equal(t, `</nav>`, Close("nav"))
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "Encode &amp; &lt;b&gt; &quot;q&quot; &#039;s&#039;", Encode(`Encode & <b> "q" 's'`))
}

func TestOpen_SplitElement(t *testing.T) {
	// navbars are emitted in two halves around caller markup
	got := Open("nav", Attrs("role", "navigation", "class", "navbar", "id", "w0-navbar")) + "\n<div>x</div>\n" + Close("nav")

	assert.Equal(t, "<nav id=\"w0-navbar\" class=\"navbar\" role=\"navigation\">\n<div>x</div>\n</nav>", got)
}

func TestTag_ContentIsVerbatim(t *testing.T) {
	assert.Equal(t, `<i>&#8595;</i>`, Tag("i", nil, "&#8595;"))
	assert.Equal(t, `<span data-x="a&amp;b"><b>x</b></span>`, Tag("span", Attrs("data-x", "a&b"), "<b>x</b>"))
}
