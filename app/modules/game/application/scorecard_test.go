package gameservice

import (
	"bytes"
	"context"
	"testing"

	gamedto "github.com/Black-And-White-Club/bowling-bot/app/modules/game/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportScorecard(t *testing.T) {
	svc, _ := newTestService(NewFakeGameRepository())
	view := startGame(t, svc, "Ann", "Bo")
	// Ann: strike, Bo: 7 spare; Ann: 3 4, Bo: 2 2
	bowlMarks(t, svc, view, "X", "7", "/", "3", "4", "2", "2")

	data, err := svc.ExportScorecard(context.Background(), uuid.MustParse(view.ID))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(scorecardSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, []string{"Player", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "Total"}, rows[0])

	assert.Equal(t, "Ann", rows[1][0])
	assert.Equal(t, "X", rows[1][1])
	assert.Equal(t, "3 4", rows[1][2])
	assert.Equal(t, "17", rows[2][1])
	assert.Equal(t, "24", rows[2][2])

	assert.Equal(t, "Bo", rows[3][0])
	assert.Equal(t, "7 /", rows[3][1])
	assert.Equal(t, "12", rows[4][1])
	assert.Equal(t, "16", rows[4][2])
}

func TestBuildScorecard_Winner(t *testing.T) {
	view := gamedto.GameView{
		Players: []gamedto.PlayerView{
			{Name: "Ann", TotalScore: 120},
			{Name: "Bo", TotalScore: 120},
		},
		Complete: true,
		Winners:  []string{"Ann", "Bo"},
		Tie:      true,
	}

	data, err := BuildScorecard(view)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	label, err := f.GetCellValue(scorecardSheet, "A7")
	require.NoError(t, err)
	names, err := f.GetCellValue(scorecardSheet, "B7")
	require.NoError(t, err)
	assert.Equal(t, "Tie", label)
	assert.Equal(t, "Ann, Bo", names)
}

func TestExportScorecard_UnknownGame(t *testing.T) {
	svc, _ := newTestService(NewFakeGameRepository())

	_, err := svc.ExportScorecard(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrGameNotFound)
}
