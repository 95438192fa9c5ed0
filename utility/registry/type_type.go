package registry

import (
	"encoding/xml"
	"strings"
)

type Type struct {
	Name     string
	Category string
	Api      string
	Alias    string
	Parents  []string
	NameTail string // text following the <name> child
}

func (r *Type) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	r.Name = attribute(start, "name")
	r.Category = attribute(start, "category")
	r.Api = attribute(start, "api")
	r.Alias = attribute(start, "alias")
	if parent := attribute(start, "parent"); parent != "" {
		for _, item := range strings.Split(parent, ",") {
			r.Parents = append(r.Parents, strings.TrimSpace(item))
		}
	}

	segments, err := decodeMixed(decoder)
	if err != nil {
		return err
	}

	named := false
	tail := new(strings.Builder)
	for _, segment := range segments {
		if named && segment.Element == "" {
			tail.WriteString(segment.Text)
			continue
		}
		if segment.Element == "name" {
			r.Name = segment.Text
			named = true
		}
	}
	r.NameTail = tail.String()

	return nil
}
