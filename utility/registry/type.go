package registry

import (
	"encoding/xml"
	"strings"
)

type Registry struct {
	XMLName    xml.Name     `xml:"registry"`
	Types      []*Type      `xml:"types>type"`
	Commands   []*Command   `xml:"commands>command"`
	Features   []*Feature   `xml:"feature"`
	Extensions []*Extension `xml:"extensions>extension"`
}

type Feature struct {
	Name     string     `xml:"name,attr"`
	Api      string     `xml:"api,attr"`
	Number   string     `xml:"number,attr"`
	Requires []*Require `xml:"require"`
}

type Extension struct {
	Name        string     `xml:"name,attr"`
	Number      string     `xml:"number,attr"`
	Type        string     `xml:"type,attr"` // instance or device
	Supported   string     `xml:"supported,attr"`
	Provisional string     `xml:"provisional,attr"`
	Platform    string     `xml:"platform,attr"`
	Depends     string     `xml:"depends,attr"`
	Requires    []*Require `xml:"require"`
}

func (r *Extension) IsProvisional() bool {
	return r.Provisional == "true"
}

func (r *Extension) IsInstance() bool {
	return r.Type == "instance"
}

type Require struct {
	Api       string       `xml:"api,attr"`
	Feature   string       `xml:"feature,attr"`   // legacy comma list
	Extension string       `xml:"extension,attr"` // legacy comma list
	Depends   string       `xml:"depends,attr"`
	Commands  []*Reference `xml:"command"`
}

type Reference struct {
	Name string `xml:"name,attr"`
}

// Supports reports whether a comma separated api list names the api. An empty list supports every api.
func Supports(list string, api string) bool {
	if list == "" {
		return true
	}
	for _, item := range strings.Split(list, ",") {
		if strings.TrimSpace(item) == api {
			return true
		}
	}
	return false
}
