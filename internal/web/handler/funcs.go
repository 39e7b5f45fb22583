package handler

import (
	"html/template"
)

// TemplateFuncs are the helpers available in every page template.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// kindClass returns the Bulma tag color of a widget kind
		"kindClass": func(kind string) string {
			switch kind {
			case "dropdown":
				return "is-info"
			case "nav":
				return "is-link"
			case "navbar":
				return "is-primary"
			case "message":
				return "is-warning"
			}

			return "is-light"
		},
		"add": func(a, b int) int {
			return a + b
		},
	}
}
