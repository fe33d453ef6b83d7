package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot_machine/internal/model"
	servModel "slot_machine/internal/service/slot/model"
)

func TestPad(t *testing.T) {
	assert.Equal(t, 4, runewidth.StringWidth(pad("7", 4)))
	assert.Equal(t, 4, runewidth.StringWidth(pad("💎", 4)))
	assert.Equal(t, 4, runewidth.StringWidth(pad("Watermelon", 4)))
}

func TestRenderGrid_AlignedRows(t *testing.T) {
	grid := [][]string{
		{"Cherry", "Diamond", "Seven"},
		{"Bell", "Bell", "Bell"},
	}
	wins := []model.WinLine{{Line: 1, Cells: []model.Point{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}}}

	var buf bytes.Buffer
	renderGrid(&buf, grid, wins)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	width := runewidth.StringWidth(lines[0])
	assert.Equal(t, 1+3*(cellWidth+3), width)
	for _, l := range lines[1:3] {
		cells := strings.Split(strings.Trim(l, "|"), "|")
		require.Len(t, cells, 3, l)
		for _, c := range cells {
			assert.Equal(t, cellWidth+2, displayWidth(c), c)
		}
	}
	assert.Equal(t, 3, strings.Count(lines[2], "["))
	assert.NotContains(t, lines[1], "[")
}

func TestPad_Keycap(t *testing.T) {
	seven := servModel.Seven.Emoji()
	assert.Equal(t, 2, displayWidth(seven))
	assert.Equal(t, seven+"  ", pad(seven, cellWidth))
	assert.Equal(t, "🍒  ", pad("🍒", cellWidth))
	assert.Equal(t, "ab  ", pad("ab", cellWidth))
}

func TestRenderLeaderboard(t *testing.T) {
	var buf bytes.Buffer
	renderLeaderboard(&buf, nil)
	assert.Contains(t, buf.String(), "No entries yet")

	buf.Reset()
	renderLeaderboard(&buf, []model.LeaderboardEntry{{Name: "Ann", Score: 300}, {Name: "Bob", Score: 120}})
	assert.Contains(t, buf.String(), "1. Ann 300 coins")
	assert.Contains(t, buf.String(), "2. Bob 120 coins")
}

func TestRenderStore(t *testing.T) {
	var buf bytes.Buffer
	renderStore(&buf, model.DefaultStoreItems(), 75)

	out := buf.String()
	assert.Contains(t, out, "Credits: 75")
	for _, it := range model.DefaultStoreItems() {
		assert.Contains(t, out, string(it.ID))
	}
}
