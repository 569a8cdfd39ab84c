package svgdoc

import (
	"errors"
	"io"
	"iter"
	"os"

	"github.com/beevik/etree"
	pkgerrors "github.com/pkg/errors"
)

// ErrNoRoot is returned when the input holds no root element.
var ErrNoRoot = errors.New("document has no root element")

// StdinPath makes Open read from standard input.
const StdinPath = "-"

// Element is one decoded tag and its attributes.
type Element struct {
	// Index is the element's position in document order, starting at 0.
	Index int
	// Tag is the local tag name, e.g. "path".
	Tag   string
	attrs map[string]string
}

// NewElement builds an Element from a tag name and attribute map.
func NewElement(index int, tag string, attrs map[string]string) Element {
	return Element{Index: index, Tag: tag, attrs: attrs}
}

// Attr returns the value of the named attribute. Prefixed attributes are
// looked up by their full "prefix:key" name.
func (e Element) Attr(key string) (string, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

// Document is a decoded SVG document.
type Document struct {
	doc *etree.Document
}

// Open reads and decodes the SVG file at path, or standard input when path is
// StdinPath.
func Open(path string) (*Document, error) {
	if path == StdinPath {
		return Read(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to open svg")
	}
	defer f.Close()

	return Read(f)
}

// Read decodes an SVG document from r.
func Read(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to decode svg")
	}
	if doc.Root() == nil {
		return nil, ErrNoRoot
	}
	return &Document{doc: doc}, nil
}

// Attr returns an attribute of the root element, such as "width" or "viewBox".
func (d *Document) Attr(key string) (string, bool) {
	a := d.doc.Root().SelectAttr(key)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// Elements yields every element depth-first in document order. Each element
// is produced only when the consumer asks for it.
func (d *Document) Elements() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		index := 0
		stack := []*etree.Element{d.doc.Root()}
		for len(stack) > 0 {
			e := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(newElement(index, e)) {
				return
			}
			index++

			children := e.ChildElements()
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
}

func newElement(index int, e *etree.Element) Element {
	attrs := make(map[string]string, len(e.Attr))
	for _, a := range e.Attr {
		attrs[a.FullKey()] = a.Value
	}
	return NewElement(index, e.Tag, attrs)
}
