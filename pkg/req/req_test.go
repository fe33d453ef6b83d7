package req

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Bet int `json:"bet"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](strings.NewReader(`{"bet": 15}`))
	require.NoError(t, err)
	assert.Equal(t, 15, got.Bet)

	got, err = Decode[payload](strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, got.Bet)

	_, err = Decode[payload](strings.NewReader(`{"bet": "a lot"}`))
	assert.Error(t, err)
}
