package gameservice

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	gamedomain "github.com/Black-And-White-Club/bowling-bot/app/modules/game/domain"
	gamedto "github.com/Black-And-White-Club/bowling-bot/app/modules/game/dto"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const scorecardSheet = "Scorecard"

// ExportScorecard renders the game as an XLSX workbook.
func (s *GameService) ExportScorecard(ctx context.Context, gameID uuid.UUID) ([]byte, error) {
	return withTelemetryValue(s, ctx, "ExportScorecard", gameID.String(), func(ctx context.Context) ([]byte, error) {
		rec, err := s.record(ctx, gameID)
		if err != nil {
			return nil, err
		}
		return BuildScorecard(renderView(rec))
	})
}

// BuildScorecard lays a game out as a paper score sheet: a header row, then
// two rows per bowler. The first holds the marks of each frame, the second
// the running total of every settled frame.
func BuildScorecard(view gamedto.GameView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), scorecardSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, 0, gamedomain.FrameCount+2)
	header = append(header, "Player")
	for i := 1; i <= gamedomain.FrameCount; i++ {
		header = append(header, i)
	}
	header = append(header, "Total")
	if err := setRow(f, 1, header); err != nil {
		return nil, err
	}

	row := 2
	for _, p := range view.Players {
		marks := make([]interface{}, 0, len(p.Frames)+2)
		running := make([]interface{}, 0, len(p.Frames)+2)
		marks = append(marks, p.Name)
		running = append(running, "")
		for _, fr := range p.Frames {
			marks = append(marks, strings.Join(fr.Rolls, " "))
			if fr.Settled {
				running = append(running, fr.Cumulative)
			} else {
				running = append(running, "")
			}
		}
		marks = append(marks, p.TotalScore)
		running = append(running, p.TotalScore)

		if err := setRow(f, row, marks); err != nil {
			return nil, err
		}
		if err := setRow(f, row+1, running); err != nil {
			return nil, err
		}
		row += 2
	}

	if len(view.Winners) > 0 {
		label := "Winner"
		if view.Tie {
			label = "Tie"
		}
		if err := setRow(f, row+1, []interface{}{label, strings.Join(view.Winners, ", ")}); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, cells []interface{}) error {
	axis, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(scorecardSheet, axis, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
