package registry

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

func Parse(reader io.Reader) (*Registry, error) {
	registry := new(Registry)
	decoder := xml.NewDecoder(reader)
	if err := decoder.Decode(registry); err != nil {
		return nil, fmt.Errorf("failed to decode registry: %w", err)
	}
	return registry, nil
}

// HeaderVersion returns the value of the VK_HEADER_VERSION define visible to the api.
func (r *Registry) HeaderVersion(api string) string {
	version := ""
	for _, typ := range r.Types {
		if typ.Name != "VK_HEADER_VERSION" || !Supports(typ.Api, api) {
			continue
		}
		version = strings.TrimSpace(typ.NameTail)
	}
	return version
}

type segment struct {
	Element string // empty for character data
	Text    string
}

// decodeMixed reads the children of the current element, keeping character data and direct child text in order.
func decodeMixed(decoder *xml.Decoder) ([]*segment, error) {
	segments := make([]*segment, 0)
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		switch element := token.(type) {
		case xml.CharData:
			segments = append(segments, &segment{
				Text: string(element),
			})
		case xml.StartElement:
			child := new(struct {
				Text string `xml:",chardata"`
			})
			if err := decoder.DecodeElement(child, &element); err != nil {
				return nil, err
			}
			segments = append(segments, &segment{
				Element: element.Name.Local,
				Text:    child.Text,
			})
		case xml.EndElement:
			return segments, nil
		}
	}
}

func attribute(start xml.StartElement, name string) string {
	for _, attr := range start.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}
