// Package main provides the gobulma command. It renders Bulma components (dropdowns, navbars, nav items and
// messages) described in YAML widget documents, either to stdout with "gobulma render" or through a preview
// web server built on Fiber with "gobulma start". The component builders themselves live in pkg/ and can be
// used as a library without any of the commands.
package main
