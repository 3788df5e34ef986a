// Package viz previews orbit samples in a terminal.
//
// [Canvas] is a braille render.Target: each cell holds 2x4 sub-pixels, so the
// same render pipeline that writes dataset images can draw into a terminal.
// [Browser] is a Bubble Tea model paging through the families.
//
// # Key Bindings
//
//	←/→ - Previous/next family
//	Tab - Toggle clean/realistic regime
//	R   - Draw a new sample
//	Q   - Quit
package viz
