package docgen

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/lithammer/dedent"
)

const (
	TagStart = "@DOC_START"
	TagEnd   = "@DOC_END"
	TagSkip  = "@DOC_SKIP"
	Todo     = "\n> Todo: Add documentation\n"
)

var legacyRegex = regexp.MustCompile(`[\\@](class|struct|namespace)\b`)

type Document struct {
	Text     string
	Skip     bool
	Warnings []*Warning
}

// Warning marks a doxygen structural command written in the older comment convention.
type Warning struct {
	Line    int
	Content string
}

// Extract collects the tagged documentation blocks of a header.
func Extract(reader io.Reader) (*Document, error) {
	document := &Document{
		Text:     "",
		Skip:     false,
		Warnings: make([]*Warning, 0),
	}

	builder := new(strings.Builder)
	buffered := bufio.NewReader(reader)

	var block []string
	inBlock := false
	inComment := false
	number := 0
	for {
		// * lines have no length limit
		line, err := buffered.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if err == io.EOF && line == "" {
			break
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		number++

		if strings.Contains(line, TagSkip) {
			document.Skip = true
		}

		switch {
		case strings.Contains(line, TagStart):
			inBlock = true
			inComment = false
			block = make([]string, 0)
		case strings.Contains(line, TagEnd):
			if inBlock {
				builder.WriteString(Unindent(block))
			}
			block = nil
			inBlock = false
		case inBlock:
			block = append(block, Demote(strings.TrimRight(line, " \t\r\n")))
		default:
			// * older doxygen convention outside of tagged blocks
			if strings.Contains(line, "/**") {
				inComment = true
			}
			if inComment && legacyRegex.MatchString(line) {
				document.Warnings = append(document.Warnings, &Warning{
					Line:    number,
					Content: strings.TrimSpace(line),
				})
			}
			if inComment && strings.Contains(line, "*/") {
				inComment = false
			}
		}

		if err == io.EOF {
			break
		}
	}

	document.Text = builder.String()
	if document.Text == "" {
		document.Text = Todo
	}

	return document, nil
}

// Demote adds two levels to a markdown title line.
func Demote(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "# ") || strings.HasPrefix(trimmed, "##") {
		return strings.Replace(line, "#", "###", 1)
	}
	return line
}

// Unindent removes the common indentation of a block and terminates every line.
func Unindent(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return dedent.Dedent(strings.Join(lines, "\n") + "\n")
}
