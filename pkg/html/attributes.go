// Package html provides the small markup layer the widgets are built on: an ordered attribute bag with
// class and style merging, and helpers rendering tags with a deterministic attribute order.
package html

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Attr is a single HTML attribute.
type Attr struct {
	Name  string
	Value string
}

// Attributes is an ordered set of HTML attributes.
// Every method returns a new value; the receiver is never modified.
type Attributes []Attr

// Attrs builds Attributes from name/value pairs. A trailing name without value is ignored.
func Attrs(pairs ...string) Attributes {
	a := make(Attributes, 0, len(pairs)/2)

	for i := 0; i+1 < len(pairs); i += 2 {
		a = a.Set(pairs[i], pairs[i+1])
	}

	return a
}

// Clone returns a copy that does not share storage with a.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}

	out := make(Attributes, len(a))
	copy(out, a)

	return out
}

// Get returns the value of the named attribute.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}

	return "", false
}

// Has reports whether the named attribute is present.
func (a Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Set returns a copy with name set to value. An existing attribute keeps its position.
func (a Attributes) Set(name, value string) Attributes {
	out := a.Clone()

	for i := range out {
		if out[i].Name == name {
			out[i].Value = value
			return out
		}
	}

	return append(out, Attr{Name: name, Value: value})
}

// Delete returns a copy without the named attribute.
func (a Attributes) Delete(name string) Attributes {
	out := make(Attributes, 0, len(a))

	for _, attr := range a {
		if attr.Name != name {
			out = append(out, attr)
		}
	}

	return out
}

// Merge returns a copy of a with every attribute of b applied on top. Classes are merged additively,
// every other key is last-wins.
func (a Attributes) Merge(b Attributes) Attributes {
	out := a.Clone()

	for _, attr := range b {
		if attr.Name == "class" {
			out = out.AddClass(strings.Fields(attr.Value)...)
			continue
		}

		out = out.Set(attr.Name, attr.Value)
	}

	return out
}

// AddClass appends CSS classes not yet present. Empty class names are skipped.
func (a Attributes) AddClass(classes ...string) Attributes {
	current, _ := a.Get("class")
	existing := strings.Fields(current)

	added := false

	for _, class := range classes {
		for _, c := range strings.Fields(class) {
			if contains(existing, c) {
				continue
			}

			existing = append(existing, c)
			added = true
		}
	}

	if !added {
		return a.Clone()
	}

	return a.Set("class", strings.Join(existing, " "))
}

// AddStyle appends inline CSS declarations to the style attribute.
func (a Attributes) AddStyle(style string) Attributes {
	style = strings.TrimSpace(style)
	if style == "" {
		return a.Clone()
	}

	current, ok := a.Get("style")
	if !ok || current == "" {
		return a.Set("style", style)
	}

	if !strings.HasSuffix(current, ";") {
		current += ";"
	}

	return a.Set("style", current+style)
}

// UnmarshalYAML decodes a YAML mapping keeping the key order of the document.
func (a *Attributes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return &yaml.TypeError{Errors: []string{"attributes must be a mapping"}}
	}

	out := make(Attributes, 0, len(value.Content)/2)

	for i := 0; i+1 < len(value.Content); i += 2 {
		out = out.Set(value.Content[i].Value, value.Content[i+1].Value)
	}

	*a = out

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
