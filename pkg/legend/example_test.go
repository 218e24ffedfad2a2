package legend_test

import (
	"fmt"

	"github.com/matzehuels/plotscale/pkg/geom"
	"github.com/matzehuels/plotscale/pkg/legend"
	"github.com/matzehuels/plotscale/pkg/series"
	"github.com/matzehuels/plotscale/pkg/textmetrics"
)

func ExampleRedistribute() {
	// Seven entries dealt into three columns: the first column takes the
	// extra item.
	var list []series.Series
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		list = append(list, series.Static{Name: name})
	}
	tm := textmetrics.Monospace{Advance: 1, Ascent: 1, Descent: 0}
	l := legend.Build(list, legend.MultiColumn, legend.Metrics{FontSize: 10}, tm)

	grid := legend.Redistribute(l, 3, legend.ColumnMajor)
	for i, c := range grid.Columns {
		var labels []string
		for _, it := range c.Items {
			labels = append(labels, it.Label)
		}
		fmt.Println("column", i, labels)
	}
	// Output:
	// column 0 [a b c]
	// column 1 [d e]
	// column 2 [f g]
}

func ExampleModifySize() {
	// A legend below the plot re-grids until it fits the plot width.
	var list []series.Series
	for i := 1; i <= 6; i++ {
		list = append(list, series.Static{Name: fmt.Sprintf("run %d", i)})
	}
	tm := textmetrics.Monospace{Advance: 1, Ascent: 1.5, Descent: 0.5}
	m := legend.Metrics{FontSize: 10, SampleLength: 20, XSeparation: 5, ColumnSeparation: 10}
	pos := legend.Position{Location: legend.OutsideBottom}

	first := legend.CalcSize(legend.Build(list, legend.MultiColumn, m, tm), m, pos)
	fmt.Println("first guess:", first.Required.Width, "x", first.Required.Height)

	final := legend.ModifySize(first, m, pos, legend.MultiColumn, geom.Size{Width: 300, Height: 200})
	fmt.Println("columns:", final.Layout.ColumnCount())
	fmt.Println("final:", final.Required.Width, "x", final.Required.Height)
	// Output:
	// first guess: 75 x 120
	// columns: 3
	// final: 245 x 40
}
