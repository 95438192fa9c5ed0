package docgen

import (
	"strings"
)

func Anchor(name string) string {
	return strings.ReplaceAll(name, ".", "")
}

func TableOfContents(headers []*Header) string {
	lines := make([]string, 0, len(headers))
	for _, header := range headers {
		lines = append(lines, "- ["+header.Name+"](#"+Anchor(header.Name)+")")
	}
	return "## Table of Contents\n" + strings.Join(lines, "\n")
}

// Readme renders the folder documentation: the table of contents, then one section per header.
func Readme(headers []*Header) string {
	builder := new(strings.Builder)
	builder.WriteString(TableOfContents(headers) + "\n")
	for _, header := range headers {
		builder.WriteString("\n## " + header.Name + "\n")
		builder.WriteString(header.Document.Text)
	}
	return builder.String()
}
