// Package preview rasterises measured road traces into a PNG so a human can
// check that every road was picked up and classified as intended.
//
// Traces are drawn in their category colour on a canvas that covers the
// bounding box of all traces plus a margin. The canvas origin is the top-left
// corner of that box, so image pixel (0,0) corresponds to SVG user-space point
// Result.Origin.
//
// # Pipeline
//
//  1. Each trace is stroked into a transparent layer with
//     golang.org/x/image/vector, one quad per segment and one square per
//     vertex to close the joins.
//  2. The layer is composited over the background with bild's normal blend.
//  3. An optional coordinate grid is drawn in SVG user-space units.
//  4. The image is resampled with imaging when a scale other than 1 is set.
package preview
