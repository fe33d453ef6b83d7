package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot_machine/internal/model"
)

func TestPlayLines(t *testing.T) {
	require.Len(t, PlayLines, PaylineCount)

	full := 0
	for i, line := range PlayLines {
		require.NoError(t, ValidatePayline(line), "line %d", i+1)
		if !line.Short() {
			full++
		}
	}
	assert.Equal(t, 30, full)

	// линия 4 это средняя строка
	for c, p := range PlayLines[3] {
		assert.Equal(t, model.Point{Row: 3, Col: c}, p)
	}
	assert.Equal(t, Payline{{Row: 2, Col: 5}, {Row: 3, Col: 5}, {Row: 4, Col: 5}, {Row: 5, Col: 5}, {Row: 6, Col: 5}}, PlayLines[39])
}

func TestValidatePayline(t *testing.T) {
	tests := []struct {
		name    string
		line    Payline
		wantErr bool
	}{
		{"too short", Payline{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, true},
		{"out of bounds", Payline{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 7}}, true},
		{"duplicate", Payline{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 3}}, true},
		{"ok", Payline{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 1, Col: 4}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayline(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBuildPaylines_WrongCount(t *testing.T) {
	_, err := buildPaylines([][]cell{{{0, 0}, {0, 1}, {0, 2}, {0, 3}}})
	assert.Error(t, err)
}

func TestSymbols(t *testing.T) {
	assert.Equal(t, Diamond, Wild)
	assert.Equal(t, 6, Wild.Multiplier())
	for _, s := range []Symbol{Cherry, Lemon, Watermelon, Orange} {
		assert.True(t, s.IsLowFruit(), s.Name())
		assert.Equal(t, 1, s.Multiplier())
	}
	for _, s := range []Symbol{Bell, Seven, Star, Diamond} {
		assert.False(t, s.IsLowFruit(), s.Name())
	}
	s, ok := SymbolByName("Seven")
	require.True(t, ok)
	assert.Equal(t, Seven, s)
	_, ok = SymbolByName("Banana")
	assert.False(t, ok)
}
