package report

import (
	"chat-sim/projection"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 6 * vg.Inch
	chartFormat = "png"

	timeTickLayout = "01-02 15:04:05"
)

// renderFrequencyChart draws one bar per sender, labelled with the sender name.
func renderFrequencyChart(w io.Writer, frequency []projection.SenderFrequency) error {
	p := plot.New()
	p.Title.Text = "Message Frequency per User"
	p.X.Label.Text = "User"
	p.Y.Label.Text = "Number of Messages"
	p.Y.Min = 0

	if len(frequency) > 0 {
		values := plotter.Values(lo.Map(frequency, func(f projection.SenderFrequency, _ int) float64 {
			return float64(f.Count)
		}))
		bars, err := plotter.NewBarChart(values, vg.Points(30))
		if err != nil {
			return fmt.Errorf("frequency bars: %w", err)
		}
		bars.Color = plotutil.Color(0)
		p.Add(bars)
		p.NominalX(lo.Map(frequency, func(f projection.SenderFrequency, _ int) string {
			return f.Sender
		})...)
	}
	return writePlot(w, p)
}

// renderTimelineChart draws the cumulative message count against wall-clock time.
func renderTimelineChart(w io.Writer, timeline *projection.Timeline) error {
	p := plot.New()
	p.Title.Text = "Activity Timeline"
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Cumulative Messages"
	p.Y.Min = 0
	p.X.Tick.Marker = plot.TimeTicks{Format: timeTickLayout, Time: plot.UTCUnixTime}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if len(timeline.Points) > 0 {
		xys := make(plotter.XYs, len(timeline.Points))
		for i, point := range timeline.Points {
			xys[i].X = unixSeconds(point.At)
			xys[i].Y = float64(point.Cumulative)
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("timeline line: %w", err)
		}
		line.LineStyle.Color = plotutil.Color(1)
		p.Add(line)
	}
	return writePlot(w, p)
}

func writePlot(w io.Writer, p *plot.Plot) error {
	writer, err := p.WriterTo(chartWidth, chartHeight, chartFormat)
	if err != nil {
		return err
	}
	_, err = writer.WriteTo(w)
	return err
}

func unixSeconds(at time.Time) float64 {
	return float64(at.UnixNano()) / float64(time.Second)
}
