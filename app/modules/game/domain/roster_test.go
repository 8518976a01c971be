package gamedomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster(t *testing.T) {
	r := NewRoster()
	assert.Equal(t, 1, r.Len())
	assert.False(t, r.Ready(), "blank slot")
	assert.False(t, r.Remove(0), "last slot stays")

	for i := 1; i < MaxPlayers; i++ {
		require.True(t, r.Add())
	}
	assert.False(t, r.Add(), "roster is full")

	for i, name := range []string{"Ann", "Bo", "Cy", "Di", "Ed"} {
		require.True(t, r.Rename(i, name))
	}
	assert.False(t, r.Rename(MaxPlayers, "Fay"))
	assert.True(t, r.Ready())

	require.True(t, r.Remove(1))
	assert.Equal(t, []string{"Ann", "Cy", "Di", "Ed"}, r.Names())
	assert.False(t, r.Remove(-1))

	g, err := r.Start()
	require.NoError(t, err)
	assert.Equal(t, 4, g.PlayerCount())
}

func TestRoster_StartRejectsBlankName(t *testing.T) {
	r := NewRoster()
	r.Add()
	r.Rename(0, "Ann")

	_, err := r.Start()
	assert.ErrorIs(t, err, ErrBlankName)
}
