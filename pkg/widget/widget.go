// Package widget holds the configuration shared by every component: element id allocation,
// HTML attributes and the size modifier.
//
// Widget is a value. Its With methods return a modified copy and leave the receiver as it was,
// so a configured widget can be reused as a template for others.
package widget

import (
	"github.com/GoBulma/GoBulma/pkg/html"
)

// DefaultIDPrefix is the prefix of generated ids.
const DefaultIDPrefix = "w"

// Widget is the configuration common to all components.
type Widget struct {
	attributes   html.Attributes
	id           string
	autoIDPrefix string
	noAutoID     bool
	size         Size
	ids          IDAllocator
}

// New returns a widget generating ids with DefaultIDPrefix from the shared counter.
func New() Widget {
	return Widget{autoIDPrefix: DefaultIDPrefix}
}

// WithAttributes sets the HTML attributes of the root element.
func (w Widget) WithAttributes(a html.Attributes) Widget {
	w.attributes = a.Clone()
	return w
}

// WithAutoIDPrefix sets the prefix of generated ids.
func (w Widget) WithAutoIDPrefix(prefix string) Widget {
	w.autoIDPrefix = prefix
	return w
}

// WithID sets an explicit id. Explicit ids never consume a counter value.
func (w Widget) WithID(id string) Widget {
	w.id = id
	return w
}

// WithoutAutoGenerateID disables id generation. Without an explicit id the widget id is empty.
func (w Widget) WithoutAutoGenerateID() Widget {
	w.noAutoID = true
	return w
}

// WithIDAllocator makes the widget take generated ids from ids instead of the shared counter.
func (w Widget) WithIDAllocator(ids IDAllocator) Widget {
	w.ids = ids
	return w
}

// WithSize sets the size modifier.
func (w Widget) WithSize(s Size) (Widget, error) {
	size, err := ParseSize(string(s))
	if err != nil {
		return w, err
	}

	w.size = size

	return w, nil
}

// Attributes returns a copy of the HTML attributes.
func (w Widget) Attributes() html.Attributes {
	return w.attributes.Clone()
}

// Size returns the size modifier, empty when unset.
func (w Widget) Size() Size {
	return w.size
}

// AutoIDPrefix returns the prefix of generated ids.
func (w Widget) AutoIDPrefix() string {
	return w.autoIDPrefix
}

// IDs returns the allocator in use.
func (w Widget) IDs() IDAllocator {
	if w.ids == nil {
		return shared
	}

	return w.ids
}

// ID returns the explicit id, or allocates a new one unless generation is disabled.
// Every call without explicit id consumes one value.
func (w Widget) ID() string {
	if w.id != "" || w.noAutoID {
		return w.id
	}

	return ResolveID(w.IDs(), "", w.autoIDPrefix)
}
