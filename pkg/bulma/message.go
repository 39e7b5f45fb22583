package bulma

import (
	"github.com/GoBulma/GoBulma/pkg/html"
	"github.com/GoBulma/GoBulma/pkg/widget"
)

const messageIDSuffix = "-message"

// Message renders a colored message box with an optional header and close button.
//
// See https://bulma.io/documentation/components/message/
type Message struct {
	widget.Widget

	body           string
	bodyAttributes html.Attributes

	headerAttributes html.Attributes
	headerColor      widget.Color
	headerMessage    string
	withoutHeader    bool

	closeButtonAttributes html.Attributes
	closeButtonSpanAttrs  html.Attributes
	withoutCloseButton    bool

	bodyCSSClass        string
	closeButtonCSSClass string
	headerCSSClass      string
	messageCSSClass     string
}

// NewMessage returns a dark message with Bulma's default classes, a header and a close button.
func NewMessage() Message {
	return Message{
		Widget:              widget.New(),
		headerColor:         widget.ColorDark,
		bodyCSSClass:        "message-body",
		closeButtonCSSClass: "delete",
		headerCSSClass:      "message-header",
		messageCSSClass:     "message",
	}
}

// WithAttributes sets the attributes of the message. An id attribute replaces the generated id.
func (m Message) WithAttributes(a html.Attributes) Message {
	m.Widget = m.Widget.WithAttributes(a)
	return m
}

// WithID sets the widget id; the element id is the widget id followed by "-message".
func (m Message) WithID(id string) Message {
	m.Widget = m.Widget.WithID(id)
	return m
}

// WithAutoIDPrefix sets the prefix of the generated id.
func (m Message) WithAutoIDPrefix(prefix string) Message {
	m.Widget = m.Widget.WithAutoIDPrefix(prefix)
	return m
}

// WithoutAutoGenerateID renders the message without id unless one is set.
func (m Message) WithoutAutoGenerateID() Message {
	m.Widget = m.Widget.WithoutAutoGenerateID()
	return m
}

// WithIDAllocator sets the allocator of the generated id.
func (m Message) WithIDAllocator(ids widget.IDAllocator) Message {
	m.Widget = m.Widget.WithIDAllocator(ids)
	return m
}

// WithSize sets the size of the message and of its close button.
func (m Message) WithSize(s widget.Size) (Message, error) {
	w, err := m.Widget.WithSize(s)
	if err != nil {
		return m, err
	}

	m.Widget = w

	return m, nil
}

// WithBody sets the body. It is not encoded.
func (m Message) WithBody(body string) Message {
	m.body = body
	return m
}

// WithBodyAttributes sets the attributes of the body div.
func (m Message) WithBodyAttributes(a html.Attributes) Message {
	m.bodyAttributes = a.Clone()
	return m
}

// WithHeaderAttributes sets the attributes of the header div.
func (m Message) WithHeaderAttributes(a html.Attributes) Message {
	m.headerAttributes = a.Clone()
	return m
}

// WithHeaderColor sets the color of the message. Only the values of widget.Colors are accepted.
func (m Message) WithHeaderColor(c widget.Color) (Message, error) {
	color, err := widget.ParseColor(string(c))
	if err != nil {
		return m, err
	}

	m.headerColor = color

	return m, nil
}

// WithHeaderMessage sets the header text. It is not encoded.
func (m Message) WithHeaderMessage(text string) Message {
	m.headerMessage = text
	return m
}

// WithoutHeader drops the header, close button included.
func (m Message) WithoutHeader() Message {
	m.withoutHeader = true
	return m
}

// WithCloseButtonAttributes sets the attributes of the close button.
func (m Message) WithCloseButtonAttributes(a html.Attributes) Message {
	m.closeButtonAttributes = a.Clone()
	return m
}

// WithCloseButtonSpanAttributes sets the attributes of the span inside the close button.
func (m Message) WithCloseButtonSpanAttributes(a html.Attributes) Message {
	m.closeButtonSpanAttrs = a.Clone()
	return m
}

// WithoutCloseButton drops the close button from the header.
func (m Message) WithoutCloseButton() Message {
	m.withoutCloseButton = true
	return m
}

// WithBodyCSSClass sets the class of the body.
func (m Message) WithBodyCSSClass(class string) Message {
	m.bodyCSSClass = class
	return m
}

// WithCloseButtonCSSClass sets the class of the close button.
func (m Message) WithCloseButtonCSSClass(class string) Message {
	m.closeButtonCSSClass = class
	return m
}

// WithHeaderCSSClass sets the class of the header.
func (m Message) WithHeaderCSSClass(class string) Message {
	m.headerCSSClass = class
	return m
}

// WithMessageCSSClass sets the class of the outer element.
func (m Message) WithMessageCSSClass(class string) Message {
	m.messageCSSClass = class
	return m
}

// Render returns the message markup.
func (m Message) Render() string {
	attrs := m.Attributes()

	if id, _ := attrs.Get("id"); id == "" {
		if id = m.ID(); id != "" {
			attrs = attrs.Set("id", id+messageIDSuffix)
		}
	}

	attrs = attrs.AddClass(m.messageCSSClass, string(m.headerColor), string(m.Size()))

	return html.Tag("div", attrs, "\n"+m.header()+m.bodyTag())
}

func (m Message) header() string {
	if m.withoutHeader {
		return ""
	}

	content := m.headerMessage

	if button := m.closeButton(); button != "" {
		content = "\n" + html.Tag("p", nil, m.headerMessage) + "\n" + button
	}

	return html.Tag("div", m.headerAttributes.AddClass(m.headerCSSClass), content) + "\n"
}

func (m Message) closeButton() string {
	if m.withoutCloseButton {
		return ""
	}

	span := html.Tag("span", m.closeButtonSpanAttrs.Set("aria-hidden", "true"), "&times;")

	attrs := m.closeButtonAttributes.
		AddClass(m.closeButtonCSSClass, string(m.Size())).
		Set("type", "button")

	return html.Tag("button", attrs, span) + "\n"
}

func (m Message) bodyTag() string {
	body := m.body
	if body != "" {
		body = "\n" + body + "\n"
	}

	return html.Tag("div", m.bodyAttributes.AddClass(m.bodyCSSClass), body) + "\n"
}
