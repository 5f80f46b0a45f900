package extract

import (
	"encoding/xml"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document wraps one fetched payload and exposes it to the strategies in
// both of the shapes Steam serves: an HTML tree and a flat set of XML fields.
// Both parses are lazy; a document fetched from the ?xml=1 variant never
// builds an HTML tree unless a fallback strategy asks for it.
type Document struct {
	raw string

	html    *goquery.Document
	htmlErr error

	xmlFields map[string]string
}

// NewDocument creates a document from a raw payload.
func NewDocument(raw string) *Document {
	return &Document{raw: raw}
}

// Raw returns the unparsed payload.
func (d *Document) Raw() string {
	return d.raw
}

// HTML returns the goquery tree for the payload, parsing it on first use.
func (d *Document) HTML() (*goquery.Document, error) {
	if d.html == nil && d.htmlErr == nil {
		d.html, d.htmlErr = goquery.NewDocumentFromReader(strings.NewReader(d.raw))
	}
	return d.html, d.htmlErr
}

// XMLField returns the text of the first XML element with the given tag name.
// The whole payload is token-scanned once and the element texts are cached;
// a payload that is not XML at all simply yields no fields.
func (d *Document) XMLField(tag string) (string, bool) {
	if d.xmlFields == nil {
		d.xmlFields = scanXMLFields(d.raw)
	}
	value, ok := d.xmlFields[tag]
	return value, ok
}

// scanXMLFields collects leaf element texts by tag name. Only the first
// occurrence of each tag is kept, matching how the Steam XML profile lays
// out its fields.
func scanXMLFields(raw string) map[string]string {
	fields := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(raw))
	decoder.Strict = false

	var current string
	var text strings.Builder
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			current = t.Name.Local
			text.Reset()
		case xml.CharData:
			if current != "" {
				text.Write(t)
			}
		case xml.EndElement:
			if current == t.Name.Local && current != "" {
				if _, seen := fields[current]; !seen {
					fields[current] = strings.TrimSpace(text.String())
				}
			}
			current = ""
		}
	}
	return fields
}
