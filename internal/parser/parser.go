// Package parser turns the product plan markdown and JSON artifacts into
// product records. Markdown parsers are total: a missing or unusable
// document yields nil, never an error, and a panic while parsing one
// document is contained to that document.
package parser

// guard runs fn and converts a panic into an absent result.
func guard[T any](fn func() *T) (out *T) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
		}
	}()
	return fn()
}
