package patch

import (
	"fmt"
	"strings"
)

// Marker identifies generated block boundaries of the form `/* <Prefix><NAME> */`.
type Marker struct {
	Prefix string
}

func NewMarker(prefix string) *Marker {
	return &Marker{
		Prefix: prefix,
	}
}

// Name returns the block name when the line is a marker line.
func (r *Marker) Name(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	head := "/* " + r.Prefix
	if !strings.HasPrefix(trimmed, head) || !strings.HasSuffix(trimmed, "*/") {
		return "", false
	}
	name := strings.TrimSuffix(strings.TrimPrefix(trimmed, head), "*/")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	return name, true
}

func (r *Marker) Line(name string) string {
	return "/* " + r.Prefix + name + " */"
}

// Patch replaces the content between every pair of identical marker lines with the named block text.
func (r *Marker) Patch(content string, blocks map[string]string) (string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.SplitAfter(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	builder := new(strings.Builder)
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSuffix(lines[i], "\n")
		builder.WriteString(line + "\n")

		name, ok := r.Name(line)
		if !ok {
			continue
		}
		text, ok := blocks[name]
		if !ok {
			return "", fmt.Errorf("line %d: unknown block %s", i+1, name)
		}
		builder.WriteString(text)

		// * skip previous content until the closing marker
		closed := false
		for i++; i < len(lines); i++ {
			closing := strings.TrimSuffix(lines[i], "\n")
			if closing == line {
				builder.WriteString(closing + "\n")
				closed = true
				break
			}
		}
		if !closed {
			return "", fmt.Errorf("unclosed marker %s", strings.TrimSpace(line))
		}
	}

	return builder.String(), nil
}
