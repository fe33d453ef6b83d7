package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot_machine/internal/model"
	"slot_machine/internal/repository/rtp_repo"
	"slot_machine/internal/service/slot"
)

func TestSimulate_Losing(t *testing.T) {
	e := scripted(9, losingDraws(), noJackpot, losingDraws(), noJackpot)
	rtp := rtp_repo.NewRTPRepository(10)

	ticks := 0
	report, err := Simulate(context.Background(), e, rtp, 2, 10, func() { ticks++ })
	require.NoError(t, err)

	assert.Equal(t, 2, ticks)
	assert.Equal(t, 20, report.TotalBet)
	assert.Equal(t, 0, report.TotalReturn)
	assert.Equal(t, 0, report.Hits)
	assert.True(t, report.RTP.IsZero())
	assert.Zero(t, report.Mean)
	assert.Zero(t, report.StdDev)
	assert.Zero(t, report.CI95)
	assert.Equal(t, 2, rtp.RTPState().TotalSpins)
}

func TestSimulate_AllWild(t *testing.T) {
	// Каждый спин: 2100 по линиям и 5 бесплатных спинов по 2100+240
	report, err := Simulate(context.Background(), scripted(wildIdx), nil, 3, 10, nil)
	require.NoError(t, err)

	perSpin := 2100 + 5*(2100+240)
	assert.Equal(t, 3*perSpin, report.TotalReturn)
	assert.Equal(t, 3, report.BonusTriggers)
	assert.Equal(t, 3, report.Hits)
	assert.Equal(t, 0, report.JackpotHits)
	assert.Equal(t, 18*240, report.Credits)
	assert.Equal(t, "100", report.HitRate.String())
	assert.InDelta(t, float64(perSpin)/10, report.Mean, 1e-9)
	assert.Zero(t, report.StdDev)
}

func TestSimulate_Validation(t *testing.T) {
	ctx := context.Background()
	e := slot.NewEngine(nil)

	_, err := Simulate(ctx, e, nil, 0, 10, nil)
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = Simulate(ctx, e, nil, 10, 101, nil)
	assert.ErrorIs(t, err, model.ErrInvalidBet)
}

func TestSimulate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Simulate(ctx, slot.NewEngine(nil), nil, 10, 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
