// Package overlay renders diagnostic views of a negotiation result.
//
// [RenderSVG] draws the canvas with one translucent band per margin
// contribution, the plot rectangle and the legend grid, so that the space
// each decoration reserved can be checked by eye. [RenderJSON] emits the
// same information in machine-readable form.
package overlay
