package registry

import (
	"encoding/xml"
	"strings"
)

type Command struct {
	NameAttr string   `xml:"name,attr"`
	Alias    string   `xml:"alias,attr"`
	Api      string   `xml:"api,attr"`
	Proto    *Proto   `xml:"proto"`
	Params   []*Param `xml:"param"`
}

// Name returns the prototype name, or the name attribute of alias entries.
func (r *Command) Name() string {
	if r.Proto != nil && r.Proto.Name != "" {
		return r.Proto.Name
	}
	return r.NameAttr
}

func (r *Command) ReturnType() string {
	if r.Proto == nil {
		return ""
	}
	return r.Proto.Type
}

func (r *Command) FirstParamType() string {
	if len(r.Params) == 0 {
		return ""
	}
	return r.Params[0].Type
}

// Declarations returns the C declaration text of every param visible to the api.
func (r *Command) Declarations(api string) []string {
	declarations := make([]string, 0, len(r.Params))
	for _, param := range r.Params {
		if !Supports(param.Api, api) {
			continue
		}
		declarations = append(declarations, param.Declaration)
	}
	return declarations
}

func (r *Command) Arguments(api string) []string {
	arguments := make([]string, 0, len(r.Params))
	for _, param := range r.Params {
		if !Supports(param.Api, api) {
			continue
		}
		arguments = append(arguments, param.Name)
	}
	return arguments
}

type Proto struct {
	Type string
	Name string
}

func (r *Proto) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	segments, err := decodeMixed(decoder)
	if err != nil {
		return err
	}
	for _, segment := range segments {
		switch segment.Element {
		case "type":
			r.Type = segment.Text
		case "name":
			r.Name = segment.Text
		}
	}
	return nil
}

type Param struct {
	Api         string
	Type        string
	Name        string
	Declaration string // leading text, type, text, name, trailing text
}

func (r *Param) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	r.Api = attribute(start, "api")
	segments, err := decodeMixed(decoder)
	if err != nil {
		return err
	}

	builder := new(strings.Builder)
	for _, segment := range segments {
		switch segment.Element {
		case "":
			builder.WriteString(segment.Text)
		case "type":
			r.Type = segment.Text
			builder.WriteString(segment.Text)
		case "name":
			r.Name = segment.Text
			builder.WriteString(segment.Text)
		}
	}
	r.Declaration = strings.TrimSpace(builder.String())

	return nil
}
