package gameservice

import (
	"bytes"
	"context"

	gamedomain "github.com/Black-And-White-Club/bowling-bot/app/modules/game/domain"
	gamedto "github.com/Black-And-White-Club/bowling-bot/app/modules/game/dto"
	"github.com/google/uuid"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette colours a score chart.
type ChartPalette struct {
	Background drawing.Color
	TextColor  drawing.Color
	Lines      []drawing.Color
}

// DefaultPalette is the lane-night palette.
var DefaultPalette = ChartPalette{
	Background: drawing.ColorFromHex("1b1f24"),
	TextColor:  drawing.ColorFromHex("e6e6e6"),
	Lines: []drawing.Color{
		drawing.ColorFromHex("f2c14e"),
		drawing.ColorFromHex("5fad56"),
		drawing.ColorFromHex("4d9de0"),
		drawing.ColorFromHex("e15554"),
		drawing.ColorFromHex("b07bd8"),
	},
}

// RenderScoreChart renders each bowler's running score as a PNG.
func (s *GameService) RenderScoreChart(ctx context.Context, gameID uuid.UUID) ([]byte, error) {
	return withTelemetryValue(s, ctx, "RenderScoreChart", gameID.String(), func(ctx context.Context) ([]byte, error) {
		rec, err := s.record(ctx, gameID)
		if err != nil {
			return nil, err
		}
		return GenerateScoreChart(renderView(rec), DefaultPalette)
	})
}

// GenerateScoreChart plots the running total of every settled frame, one
// line per bowler.
func GenerateScoreChart(view gamedto.GameView, palette ChartPalette) ([]byte, error) {
	var (
		series []chart.Series
		top    = float64(gamedomain.PinCount)
	)
	for i, p := range view.Players {
		xValues := []float64{0}
		yValues := []float64{0}
		for f, fr := range p.Frames {
			if !fr.Settled {
				break
			}
			xValues = append(xValues, float64(f+1))
			yValues = append(yValues, float64(fr.Cumulative))
			top = max(top, float64(fr.Cumulative))
		}
		if len(xValues) < 2 {
			continue
		}

		color := palette.Lines[i%len(palette.Lines)]
		series = append(series, chart.ContinuousSeries{
			Name:    p.Name,
			XValues: xValues,
			YValues: yValues,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotWidth:    4,
				DotColor:    color,
			},
		})
	}

	if len(series) == 0 {
		return renderNoDataPlaceholder(palette)
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			Padding:   chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.XAxis{
			Name:           "Frame",
			ValueFormatter: chart.IntValueFormatter,
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
			Range: &chart.ContinuousRange{Min: 0, Max: gamedomain.FrameCount},
		},
		YAxis: chart.YAxis{
			Name:           "Score",
			ValueFormatter: chart.IntValueFormatter,
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph, chart.Style{
			FillColor: palette.Background,
			FontColor: palette.TextColor,
		}),
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws the message straight onto a canvas; a chart
// with no series refuses to render.
func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No frames bowled yet"
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}
	r.SetDPI(chart.DefaultDPI)

	r.SetFillColor(palette.Background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(palette.TextColor)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
