package reportviz

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/examconsolidate/examconsolidate/report"
)

// RoomCounts renders one grouped-bar chart comparing initial vs. final room
// counts across every subproblem summary in a run, writing the standalone
// HTML page to w.
func RoomCounts(w io.Writer, summaries []report.RoomChangeSummary) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Room Consolidation Results",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "group"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "rooms"}),
	)

	labels := make([]string, len(summaries))
	initial := make([]opts.BarData, len(summaries))
	final := make([]opts.BarData, len(summaries))
	for i, s := range summaries {
		labels[i] = fmt.Sprintf("%s/%s", s.Shift, s.Campus)
		initial[i] = opts.BarData{Value: s.InitialRoomsCount}
		final[i] = opts.BarData{Value: s.FinalRoomsCount}
	}

	bar.SetXAxis(labels).
		AddSeries("Initial Rooms", initial).
		AddSeries("Final Rooms", final).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
		)

	return bar.Render(w)
}
