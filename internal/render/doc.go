// Package render rasterizes normalized curves into fixed-size images.
//
// A [Renderer] applies the regime's noise model, projects the curve through
// a fixed affine map (center 256, scale 200, y flipped) and draws onto a
// [Target]:
//
//   - [Canvas]: 512×512 RGBA raster, encoded as PNG
//   - [SVG]: vector document with the same primitives
//
// Clean renderings are a 1px blue polyline. Realistic renderings add a
// light grid, 2px line width, black marker dots and one red keypoint.
package render
