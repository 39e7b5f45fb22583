package html

import (
	"strings"
)

// attributeOrder lists attributes rendered before all others, in this order.
// Remaining attributes follow in insertion order.
var attributeOrder = []string{ //nolint:gochecknoglobals
	"type", "id", "class", "name", "value", "href", "src", "srcset", "form", "action", "method",
	"selected", "checked", "readonly", "disabled", "multiple", "size", "maxlength", "minlength",
	"width", "height", "rows", "cols", "alt", "title", "rel", "media",
}

var encoder = strings.NewReplacer( //nolint:gochecknoglobals
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Encode escapes the characters with a special meaning in HTML.
func Encode(s string) string {
	return encoder.Replace(s)
}

// RenderAttributes renders a as ` name="value"` pairs, including the leading space.
func RenderAttributes(a Attributes) string {
	var b strings.Builder

	done := make(map[string]bool, len(a))

	write := func(attr Attr) {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(Encode(attr.Value))
		b.WriteByte('"')

		done[attr.Name] = true
	}

	for _, name := range attributeOrder {
		if v, ok := a.Get(name); ok {
			write(Attr{Name: name, Value: v})
		}
	}

	for _, attr := range a {
		if !done[attr.Name] {
			write(attr)
		}
	}

	return b.String()
}

// Open renders an opening tag.
func Open(name string, a Attributes) string {
	return "<" + name + RenderAttributes(a) + ">"
}

// Close renders a closing tag.
func Close(name string) string {
	return "</" + name + ">"
}

// Void renders an element without content or closing tag, such as hr or img.
func Void(name string, a Attributes) string {
	return Open(name, a)
}

// Tag renders a full element. content is inserted as is; encode it first if it is text.
func Tag(name string, a Attributes, content string) string {
	return Open(name, a) + content + Close(name)
}
