// Package console renders quotes for a terminal.
//
// Rendering is a single pass: trim, then either serialize to JSON or wrap,
// enclose in language-specific quotation marks and style with color.
package console
