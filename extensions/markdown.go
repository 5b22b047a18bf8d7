// Package extensions holds small string helpers shared by note builders.
package extensions

// MarkdownExtension is the suffix every note file carries.
const MarkdownExtension = ".md"

// AppendMarkdownExtension appends MarkdownExtension to s unconditionally.
func AppendMarkdownExtension(s string) string {
	return s + MarkdownExtension
}
