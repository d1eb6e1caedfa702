package xmlutils

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Element is a generic XML element tree node. Child elements are kept in document
// order, character data directly inside the element is concatenated in Content.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []Element  `xml:",any"`
}

// ParseElement decodes the first XML element of r into an Element tree.
// Non UTF-8 documents are decoded according to their XML declaration.
func ParseElement(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var root Element
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	if err := expectEnd(dec); err != nil {
		return nil, err
	}
	return &root, nil
}

// expectEnd consumes the epilog. Only comments, processing instructions and whitespace
// may follow the root element.
func expectEnd(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return errors.New("unexpected text after root element")
			}
		default:
			return errors.New("unexpected content after root element")
		}
	}
}

// ParseElementBytes is ParseElement for an in-memory document.
func ParseElementBytes(data []byte) (*Element, error) {
	return ParseElement(bytes.NewReader(data))
}

// Name returns the local name of the element, without namespace.
func (e *Element) Name() string {
	return e.XMLName.Local
}

// Namespace returns the resolved namespace URI of the element.
func (e *Element) Namespace() string {
	return e.XMLName.Space
}

// Text returns the element's own character data with surrounding whitespace removed.
func (e *Element) Text() string {
	return strings.TrimSpace(e.Content)
}

// Attr returns the value of the attribute with the given local name.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first child element with the given local name, or nil.
func (e *Element) Child(name string) *Element {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			return &e.Children[i]
		}
	}
	return nil
}

// ChildrenNamed returns every child element with the given local name, in document order.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			out = append(out, &e.Children[i])
		}
	}
	return out
}

// ChildNames lists the local names of all child elements, in document order.
func (e *Element) ChildNames() []string {
	names := make([]string, 0, len(e.Children))
	for i := range e.Children {
		names = append(names, e.Children[i].XMLName.Local)
	}
	return names
}
