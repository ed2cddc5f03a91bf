package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vampire-rescue/internal/platform/tui"
	"github.com/vovakirdan/vampire-rescue/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagPlain  bool
	flagRunID  string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the run history",
	Long: `Display the best (or most recent) runs.

When stdout is a terminal an interactive table is shown; otherwise, or with
--plain, the runs are printed as text.

Examples:
  rescue scores
  rescue scores --recent --limit 20
  rescue scores --plain > runs.txt
  rescue scores --run 3f2c9a4e-...   # Show one run
  rescue scores --clear              # Delete the history`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the newest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text even on a terminal")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs of the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	game, err := createGame(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagClear:
		if err := store.ClearRuns(game.ID()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Run history of %s cleared.\n", game.Title())
		return nil
	case flagRunID != "":
		return printRun(out, store, flagRunID)
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, game.ID(), game.Title(), flagFPS, width, height)
	}

	return printRuns(out, store, game.ID(), game.Title())
}

// printRun writes the details of one run.
func printRun(w io.Writer, store *storage.Store, id string) error {
	run, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run with id %q", id)
	}

	fmt.Fprintf(w, "Run     %s\n", run.ID)
	fmt.Fprintf(w, "Game    %s\n", run.GameID)
	fmt.Fprintf(w, "Player  %s\n", run.Player)
	fmt.Fprintf(w, "Outcome %s\n", run.Outcome)
	fmt.Fprintf(w, "Saved   %d\n", run.Saved)
	fmt.Fprintf(w, "Ticks   %d\n", run.Ticks)
	fmt.Fprintf(w, "Seed    %d\n", run.Seed)
	fmt.Fprintf(w, "Date    %s\n", run.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

// printRuns writes the run history as plain text.
func printRuns(w io.Writer, store *storage.Store, gameID, title string) error {
	var (
		runs []storage.RunRecord
		err  error
	)
	heading := "Best runs"
	if flagRecent {
		heading = "Recent runs"
		runs, err = store.RecentRuns(gameID, flagLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Fprintf(w, "%s - %s\n\n", heading, title)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'rescue play' to record the first run!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-5s  %-7s  %-6s  %-16s  %s\n", "Rank", "Saved", "Outcome", "Ticks", "Date", "Player")
	fmt.Fprintf(w, "  %-4s  %-5s  %-7s  %-6s  %-16s  %s\n", "----", "-----", "-------", "-----", "----", "------")

	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-5d  %-7s  %-6d  %-16s  %s\n",
			i+1, r.Saved, r.Outcome, r.Ticks, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Player)
	}

	stats, err := store.Stats(gameID)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Runs: %d  Won: %d  Lost: %d  Quit: %d  Best: %d\n",
			stats.Runs, stats.Wins, stats.Losses, stats.Quits, stats.BestSaved)
	}
	return nil
}
