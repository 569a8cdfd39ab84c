// Package svgdoc decodes an SVG document into the ordered sequence of
// elements the calibration reads.
//
// The document is parsed with etree and then walked depth-first in document
// order. Every element is yielded, whether or not it is drawable; callers
// look up the attributes they need with Element.Attr and skip the rest.
//
//	doc, err := svgdoc.Open("roads.svg")
//	if err != nil {
//	    return err
//	}
//	for el := range doc.Elements() {
//	    d, ok := el.Attr("d")
//	    ...
//	}
package svgdoc
