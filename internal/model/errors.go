package model

import (
	"errors"
	"fmt"
)

// ErrValidation корень всех ошибок валидации: состояние при них не меняется
var ErrValidation = errors.New("validation failed")

var (
	ErrInvalidBet          = fmt.Errorf("%w: bet must be between 1 and 100", ErrValidation)
	ErrBetExceedsBalance   = fmt.Errorf("%w: bet exceeds balance", ErrValidation)
	ErrUnknownItem         = fmt.Errorf("%w: unknown store item", ErrValidation)
	ErrInsufficientCredits = fmt.Errorf("%w: insufficient credits", ErrValidation)
)

var (
	ErrGameOver = errors.New("game over: reset required")
	ErrBusy     = errors.New("spin already in progress")
)

// Ошибки хранилища состояния
var (
	ErrStateNotFound = errors.New("saved state not found")
	ErrCorruptState  = errors.New("saved state is corrupt")
)
