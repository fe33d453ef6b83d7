package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"slot_machine/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// cli общее состояние команд: приложение поднимается лениво в PersistentPreRun
type cli struct {
	player string
	app    *app.App
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "slot",
		Short: "7x7 slot machine with 40 paylines, jackpot, free spins and a credit store",
		Long: `7x7 slot machine with 40 paylines, progressive jackpot, free spins and a credit store.

State is kept between runs (file or Postgres), the top 5 results go to the leaderboard
(file, Postgres or Redis). Settings come from the environment or a .env file.

Example:
  slot spin --bet 10
  slot buy extra_spin
  slot serve
  slot simulate -n 1000000 --bet 5`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.app = app.NewApp()
			if c.player != "" {
				c.app.ServiceProvider.SetPlayerName(c.player)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.app != nil {
				c.app.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&c.player, "player", "", "Player name (overrides PLAYER_NAME)")

	root.AddCommand(
		c.spinCmd(),
		c.buyCmd(),
		c.storeCmd(),
		c.stateCmd(),
		c.leaderboardCmd(),
		c.resetCmd(),
		c.quitCmd(),
		c.serveCmd(),
		c.simulateCmd(),
	)

	return root
}
