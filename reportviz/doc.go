// Package reportviz renders a consolidation run's room-count reduction as an
// HTML bar chart, one bar pair (initial vs. final) per (shift, campus)
// group. Grounded on PlotResults in the descheduler multiobjective plugin's
// util/plot.go: same go-echarts chart/series/render shape, swapped from a
// scatter Pareto front to a grouped bar chart.
package reportviz
