package game

import (
	"slot_machine/internal/service/slot"
)

// scriptedRNG отдает значения из очереди, затем fallback (по модулю n)
type scriptedRNG struct {
	vals     []int
	fallback int
}

func (r *scriptedRNG) IntN(n int) int {
	if len(r.vals) > 0 {
		v := r.vals[0]
		r.vals = r.vals[1:]
		return v % n
	}
	return r.fallback % n
}

// Индексы символов без wild (Diamond = 5)
var nonWild = []int{0, 1, 2, 3, 4, 6, 7}

const wildIdx = 5

// losingDraws значения генератора для сетки, где ни одна линия не совпадает
func losingDraws() []int {
	draws := make([]int, 0, 49)
	for r := 0; r < 7; r++ {
		for c := 0; c < 7; c++ {
			draws = append(draws, nonWild[(2*r+c)%len(nonWild)])
		}
	}
	return draws
}

// wildRowDraws проигрышная сетка, в которой строка row целиком из wild
func wildRowDraws(row int) []int {
	draws := losingDraws()
	for c := 0; c < 7; c++ {
		draws[row*7+c] = wildIdx
	}
	return draws
}

func scripted(fallback int, seqs ...[]int) *slot.Engine {
	var vals []int
	for _, s := range seqs {
		vals = append(vals, s...)
	}
	return slot.NewEngine(&scriptedRNG{vals: vals, fallback: fallback})
}

// noJackpot значение розыгрыша джекпота мимо
var noJackpot = []int{1}
