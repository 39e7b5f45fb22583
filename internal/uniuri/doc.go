// Package uniuri generates cryptographically secure random strings. The preview server uses them as request ids
// and, through Allocator, as element ids of rendered widgets.
package uniuri
