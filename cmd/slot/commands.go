package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"slot_machine/internal/model"
	"slot_machine/internal/service/game"
)

func (c *cli) spinCmd() *cobra.Command {
	var bet, times int

	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Spin the reels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			serv := c.app.ServiceProvider.GameService(ctx)
			out := cmd.OutOrStdout()

			if bet == 0 {
				bet = serv.State(ctx).Bet
			}

			for i := 0; i < times; i++ {
				res, err := serv.Spin(ctx, bet)
				if err != nil {
					return err
				}
				renderSpin(out, res)
				if res.Phase == model.PhaseGameOver {
					fmt.Fprintln(out, "GAME OVER: out of coins and spins. Run `slot reset` to play again.")
					return nil
				}
				bet = res.NextBet
				if bet == 0 {
					return nil
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&bet, "bet", "b", 0, "Bet 1..100 (default: current session bet)")
	cmd.Flags().IntVarP(&times, "times", "t", 1, "Number of spins in a row")
	return cmd
}

func (c *cli) buyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item>",
		Short: "Buy a store item with credits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			res, err := c.app.ServiceProvider.GameService(ctx).Buy(ctx, model.StoreItemID(args[0]))
			if err != nil {
				return err
			}
			renderPurchase(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (c *cli) storeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "store",
		Short: "List store items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			serv := c.app.ServiceProvider.GameService(ctx)
			renderStore(cmd.OutOrStdout(), serv.Store(), serv.State(ctx).State.Credits)
			return nil
		},
	}
}

func (c *cli) stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show balance, jackpot, credits and stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			serv := c.app.ServiceProvider.GameService(ctx)
			renderState(cmd.OutOrStdout(), serv.State(ctx), serv.Stats())
			return nil
		},
	}
}

func (c *cli) leaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the top 5 results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			entries, err := c.app.ServiceProvider.GameService(ctx).Leaderboard(ctx)
			if err != nil {
				return err
			}
			renderLeaderboard(cmd.OutOrStdout(), entries)
			return nil
		},
	}
}

func (c *cli) resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Start a new game: clears the save and the leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.app.ServiceProvider.GameService(ctx).Reset(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "New game: balance %d, jackpot %d\n", st.Balance, st.Jackpot)
			return nil
		},
	}
}

func (c *cli) quitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quit",
		Short: "Record the current balance on the leaderboard and save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			serv := c.app.ServiceProvider.GameService(ctx)
			st, err := serv.Quit(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Thanks for playing! Final balance: %d coins\n\n", st.Balance)

			entries, err := serv.Leaderboard(ctx)
			if err != nil {
				return err
			}
			renderLeaderboard(out, entries)
			return nil
		},
	}
}

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (HTTP_ADDR)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context())
		},
	}
}

func (c *cli) simulateCmd() *cobra.Command {
	var (
		spins int
		bet   int
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run spins without saving anything and report RTP and hit rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sp := c.app.ServiceProvider

			bar := pb.StartNew(spins)
			if quiet {
				bar.SetWriter(io.Discard)
			} else {
				bar.SetWriter(os.Stderr)
			}

			report, err := game.Simulate(cmd.Context(), sp.Engine(), sp.RTPRepository(), spins, bet, func() {
				bar.Increment()
			})
			bar.Finish()
			if err != nil {
				return err
			}

			renderSimReport(cmd.OutOrStdout(), report, sp.RTPRepository().RTPState().WindowRTP)
			return nil
		},
	}

	cmd.Flags().IntVarP(&spins, "spins", "n", 100000, "Number of spins")
	cmd.Flags().IntVarP(&bet, "bet", "b", 1, "Bet 1..100")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Hide the progress bar")
	return cmd
}
