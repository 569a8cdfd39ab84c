// Package geometry turns parsed path data into points and measures the pixel
// length of road traces.
//
// A trace is a single SVG move command. Its parameters are read two at a time
// as (x, y) pairs. How those pairs are measured depends on the command's
// coordinate convention:
//
//   - Absolute ("M"): every pair is a position; the length is the sum of the
//     distances between consecutive positions.
//   - Relative ("m"): the first pair is the starting position and every later
//     pair is a displacement from the current position; the length is the sum
//     of the displacement magnitudes.
//
// All coordinates are in the image's user units with (0,0) at the top-left, X
// growing rightward and Y growing downward. Lengths are never negative.
package geometry
