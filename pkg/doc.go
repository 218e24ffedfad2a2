// Package pkg provides the core libraries for plotscale plot layout negotiation.
//
// # Overview
//
// Before a plot is drawn, the canvas has to be divided between the plot
// rectangle and everything around it: the border, the title, the legend,
// the axes with their tick labels and decorations such as color bars. The
// sizes depend on each other. The legend grid depends on how much room the
// plot leaves, and the plot depends on how much the legend takes.
//
// The packages are organized as follows:
//
//  1. [geom], [margin] - Value types and the tagged margin ledger
//  2. [axis], [series] - What axes and series need outside the plot
//  3. [legend] - Legend grid construction, sizing and re-gridding
//  4. [aspect] - Pixel and data aspect ratio correction
//  5. [scaling] - The two-pass negotiation tying everything together
//  6. [textmetrics], [fonts], [cache] - Text measurement
//  7. [scene], [overlay] - TOML scene input and diagnostic output
//
// # Architecture
//
// The data flow of one redraw:
//
//	scene.toml
//	     ↓
//	[scene] package (decode, validate, build config)
//	     ↓
//	[scaling] package (pass 1, pass 2, aspect correction)
//	     ↓
//	[overlay] package (SVG / JSON)
//
// # Quick Start
//
//	s, err := scene.Load("plot.toml", nil)
//	if err != nil {
//	    return err
//	}
//	res := scaling.Negotiate(s.CanvasSize(), s.Config(s.TextMetrics()))
//	fmt.Println(res.Plot)
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/plotscale/pkg/geom
// [margin]: https://pkg.go.dev/github.com/matzehuels/plotscale/pkg/margin
// [axis]: https://pkg.go.dev/github.com/matzehuels/plotscale/pkg/axis
// [series]: https://pkg.go.dev/github.com/matzehuels/plotscale/pkg/series
// [legend]: https://pkg.go.dev/github.com/matzehuels/plotscale/pkg/legend
// [aspect]: https://pkg.go.dev/github.com/matzehuels/plotscale/pkg/aspect
// [scaling]: https://pkg.go.dev/github.com/matzehuels/plotscale/pkg/scaling
// [textmetrics]: https://pkg.go.dev/github.com/matzehuels/plotscale/pkg/textmetrics
// [fonts]: https://pkg.go.dev/github.com/matzehuels/plotscale/pkg/fonts
// [cache]: https://pkg.go.dev/github.com/matzehuels/plotscale/pkg/cache
// [scene]: https://pkg.go.dev/github.com/matzehuels/plotscale/pkg/scene
// [overlay]: https://pkg.go.dev/github.com/matzehuels/plotscale/pkg/overlay
package pkg
