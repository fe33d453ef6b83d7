package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"slot_machine/internal/model"
	servModel "slot_machine/internal/service/slot/model"
)

// cellWidth ширина ячейки сетки в колонках терминала
const cellWidth = 4

// keycap эмодзи вида 7️⃣ терминал рисует в две колонки, runewidth считает одну
const keycap = "\u20e3"

// displayWidth ширина строки в колонках терминала
func displayWidth(s string) int {
	return runewidth.StringWidth(s) + strings.Count(s, keycap)
}

// pad дополняет s пробелами до ширины w с учетом широких символов
func pad(s string, w int) string {
	s = runewidth.Truncate(s, w, "")
	if n := displayWidth(s); n < w {
		s += strings.Repeat(" ", w-n)
	}
	return s
}

func symbolCell(name string) string {
	if sym, ok := servModel.SymbolByName(name); ok {
		return sym.Emoji()
	}
	return name
}

// renderGrid рисует сетку, выигравшие ячейки в скобках
func renderGrid(out io.Writer, grid [][]string, wins []model.WinLine) {
	hit := make(map[model.Point]bool)
	for _, w := range wins {
		for _, p := range w.Cells {
			hit[p] = true
		}
	}

	cols := servModel.GridCols
	if len(grid) > 0 {
		cols = len(grid[0])
	}
	border := "+" + strings.Repeat(strings.Repeat("-", cellWidth+2)+"+", cols)
	fmt.Fprintln(out, border)
	for r, row := range grid {
		var b strings.Builder
		b.WriteString("|")
		for c, name := range row {
			open, closing := " ", " "
			if hit[model.Point{Row: r, Col: c}] {
				open, closing = "[", "]"
			}
			b.WriteString(open + pad(symbolCell(name), cellWidth) + closing + "|")
		}
		fmt.Fprintln(out, b.String())
	}
	fmt.Fprintln(out, border)
}

func renderWins(out io.Writer, wins []model.WinLine) {
	if len(wins) == 0 {
		fmt.Fprintln(out, "Paylines: none")
		return
	}
	parts := make([]string, len(wins))
	for i, w := range wins {
		parts[i] = fmt.Sprintf("%d (%s %d)", w.Line, symbolCell(w.Symbol), w.Payout)
	}
	fmt.Fprintln(out, "Paylines:", strings.Join(parts, ", "))
}

func renderFreeSpins(out io.Writer, rounds []model.FreeSpinRound, total int) {
	if len(rounds) == 0 {
		return
	}
	fmt.Fprintf(out, "\nBONUS! %d free spins\n", len(rounds))
	for i, round := range rounds {
		fmt.Fprintf(out, "Free spin %d/%d\n", i+1, len(rounds))
		renderGrid(out, round.Grid, round.LineWins)
		renderWins(out, round.LineWins)
	}
	fmt.Fprintf(out, "Free spins done! Won %d coins\n", total)
}

func renderSpin(out io.Writer, res *model.SpinResult) {
	renderGrid(out, res.Grid, res.LineWins)
	renderWins(out, res.LineWins)

	if res.Has(model.EventExtraSpinUsed) {
		fmt.Fprintln(out, "Used an extra spin.")
	}
	switch {
	case res.JackpotPayout > 0:
		fmt.Fprintf(out, "JACKPOT! Won %d coins!\n", res.JackpotPayout)
	case len(res.LineWins) > 0:
		fmt.Fprintf(out, "Won %d coins + %d credits on %d payline(s)!\n",
			res.TotalPayout, res.BonusCredits, len(res.LineWins))
	default:
		fmt.Fprintln(out, "No win this time. Try again!")
	}
	if res.Has(model.EventBonusChanceUse) {
		fmt.Fprintln(out, "Bonus spin chance used.")
	}

	renderFreeSpins(out, res.FreeSpins, res.FreeSpinWin)
	renderBalanceLine(out, res.State, res.NextBet)
}

func renderPurchase(out io.Writer, res *model.PurchaseResult) {
	fmt.Fprintf(out, "Purchased %s for %d credits.\n", res.Item.Name, res.Item.Cost)
	switch res.PrizeKind {
	case model.PrizeCoins:
		fmt.Fprintf(out, "Mystery prize: %d coins!\n", res.PrizeAmount)
	case model.PrizeCredits:
		fmt.Fprintf(out, "Mystery prize: %d credits!\n", res.PrizeAmount)
	case model.PrizeExtraSpin:
		fmt.Fprintln(out, "Mystery prize: 1 extra spin!")
	}
	renderFreeSpins(out, res.FreeSpins, res.FreeSpinWin)
	renderBalanceLine(out, res.State, res.NextBet)
}

func renderBalanceLine(out io.Writer, st model.PlayerState, bet int) {
	fmt.Fprintf(out, "Balance: %d | Jackpot: %d | Credits: %d | Extra spins: %d | Bet: %d\n",
		st.Balance, st.Jackpot, st.Credits, st.ExtraSpins, bet)
}

func renderState(out io.Writer, view model.SessionView, stats model.StatsView) {
	fmt.Fprintf(out, "Player: %s (%s)\n", view.Player, view.Phase)
	renderBalanceLine(out, view.State, view.Bet)
	if view.State.BonusChance {
		fmt.Fprintln(out, "Bonus spin chance active for next spin!")
	}
	s := stats.Stats
	fmt.Fprintf(out, "Stats: Spins: %d | Wins: %d | Win Rate: %s%% | Total Won: %d | Total Bet: %d\n",
		s.Spins, s.Wins, stats.WinRate.StringFixed(1), s.TotalWon, s.TotalBet)
}

func renderStore(out io.Writer, items []model.StoreItem, credits int) {
	idW, nameW := len("ITEM"), len("NAME")
	for _, it := range items {
		idW = max(idW, displayWidth(string(it.ID)))
		nameW = max(nameW, displayWidth(it.Name))
	}

	fmt.Fprintf(out, "Credits: %d\n", credits)
	fmt.Fprintf(out, "%s  %s  %6s  %s\n", pad("ITEM", idW), pad("NAME", nameW), "COST", "DESCRIPTION")
	for _, it := range items {
		fmt.Fprintf(out, "%s  %s  %6d  %s\n", pad(string(it.ID), idW), pad(it.Name, nameW), it.Cost, it.Description)
	}
}

func renderLeaderboard(out io.Writer, entries []model.LeaderboardEntry) {
	fmt.Fprintln(out, "Leaderboard:")
	if len(entries) == 0 {
		fmt.Fprintln(out, "No entries yet")
		return
	}
	nameW := 0
	for _, e := range entries {
		nameW = max(nameW, displayWidth(e.Name))
	}
	for i, e := range entries {
		fmt.Fprintf(out, "%d. %s %d coins\n", i+1, pad(e.Name, nameW), e.Score)
	}
}

func renderSimReport(out io.Writer, r model.SimReport, windowRTP decimal.Decimal) {
	rows := [][2]string{
		{"Spins", fmt.Sprintf("%d", r.Spins)},
		{"Bet", fmt.Sprintf("%d", r.Bet)},
		{"Total bet", fmt.Sprintf("%d", r.TotalBet)},
		{"Total return", fmt.Sprintf("%d", r.TotalReturn)},
		{"RTP", fmt.Sprintf("%s%% ± %.2f%%", r.RTP.StringFixed(2), r.CI95)},
		{"Hit rate", r.HitRate.StringFixed(2) + "%"},
		{"Bonus rate", r.BonusRate.StringFixed(4) + "%"},
		{"Bonus triggers", fmt.Sprintf("%d", r.BonusTriggers)},
		{"Jackpot hits", fmt.Sprintf("%d", r.JackpotHits)},
		{"Credits earned", fmt.Sprintf("%d", r.Credits)},
		{"Return per bet: mean", fmt.Sprintf("%.4f", r.Mean)},
		{"Return per bet: stddev", fmt.Sprintf("%.4f", r.StdDev)},
		{"Window RTP", windowRTP.StringFixed(2) + "%"},
		{"Elapsed", r.Elapsed.String()},
	}

	keyW, valW := 0, 0
	for _, row := range rows {
		keyW = max(keyW, displayWidth(row[0]))
		valW = max(valW, displayWidth(row[1]))
	}

	border := "+" + strings.Repeat("-", keyW+2) + "+" + strings.Repeat("-", valW+2) + "+"
	fmt.Fprintln(out, border)
	for _, row := range rows {
		fmt.Fprintf(out, "| %s | %s |\n", pad(row[0], keyW), pad(row[1], valW))
	}
	fmt.Fprintln(out, border)
}
