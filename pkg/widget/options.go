package widget

import (
	"strings"

	"github.com/pkg/errors"
)

// Size is a Bulma size modifier.
type Size string

// Size modifiers.
const (
	SizeSmall  Size = "is-small"
	SizeMedium Size = "is-medium"
	SizeLarge  Size = "is-large"
)

// Sizes lists every valid Size.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

// Color is a Bulma color modifier.
type Color string

// Color modifiers. ColorDark is the default of some widgets and not accepted as a setting.
const (
	ColorDark    Color = "is-dark"
	ColorPrimary Color = "is-primary"
	ColorLink    Color = "is-link"
	ColorInfo    Color = "is-info"
	ColorSuccess Color = "is-success"
	ColorWarning Color = "is-warning"
	ColorDanger  Color = "is-danger"
)

// Colors lists every valid Color.
func Colors() []Color {
	return []Color{ColorPrimary, ColorLink, ColorInfo, ColorSuccess, ColorWarning, ColorDanger}
}

// ParseSize checks s against Sizes.
func ParseSize(s string) (Size, error) {
	for _, v := range Sizes() {
		if string(v) == s {
			return v, nil
		}
	}

	return "", errors.Wrapf(ErrInvalidConfiguration, "invalid size %q, valid values are: %s", s, quoted(Sizes()))
}

// ParseColor checks s against Colors.
func ParseColor(s string) (Color, error) {
	for _, v := range Colors() {
		if string(v) == s {
			return v, nil
		}
	}

	return "", errors.Wrapf(ErrInvalidConfiguration, "invalid color %q, valid values are: %s", s, quoted(Colors()))
}

func quoted[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = `"` + string(v) + `"`
	}

	return strings.Join(parts, ", ")
}
