package classify

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	pkgerrors "github.com/pkg/errors"
)

// MarkerColor extracts the hex colour carried by a marker such as
// "stroke:#ff0000".
func MarkerColor(marker string) (colorful.Color, error) {
	i := strings.IndexByte(marker, '#')
	if i < 0 {
		return colorful.Color{}, pkgerrors.Errorf("marker %q has no hex colour", marker)
	}
	hex := marker[i:]
	if len(hex) > 7 {
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, pkgerrors.Wrapf(err, "marker %q", marker)
	}
	return c, nil
}

// Colors returns the colour of every category's marker.
func (m Markers) Colors() (map[Category]colorful.Color, error) {
	colors := make(map[Category]colorful.Color, len(Categories))
	for _, cat := range Categories {
		c, err := MarkerColor(m.For(cat))
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "%s", cat)
		}
		colors[cat] = c
	}
	return colors, nil
}
