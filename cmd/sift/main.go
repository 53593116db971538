package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/ruminaider/sift/internal/session"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	flagBottom     bool
	flagIgnoreCase bool
	flagPrefix     bool
	flagPrompt     string
	flagLines      int
	flagColumns    int
	flagConfig     string
	flagLogFile    string
	flagFilter     string
)

var rootCmd = &cobra.Command{
	Use:   "sift [flags] [items...]",
	Short: "Pick an item from a list by typing",
	Long: heredoc.Doc(`
		sift reads items from its arguments, or one per line from stdin, and
		lets you narrow them down by typing. Every space-separated word of the
		query must appear in an item for it to match. Exact matches are listed
		first, then prefix matches, then the rest.

		The accepted item is printed to stdout. Items marked with alt+enter are
		printed first, in input order. Cancelling exits with status 1.
	`),
	Example: heredoc.Doc(`
		ls | sift -p "open:"
		sift -l 10 -g 3 red green blue cyan magenta yellow
		git branch --format='%(refname:short)' | sift --filter feat
	`),
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sift %s\n", version)
	},
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&flagBottom, "bottom", "b", false, "Draw the menu at the bottom of the screen")
	f.BoolVarP(&flagIgnoreCase, "ignore-case", "i", false, "Match case-insensitively")
	f.BoolVarP(&flagPrefix, "prefix", "x", false, "Only match items starting with the query")
	f.StringVarP(&flagPrompt, "prompt", "p", "", "Text shown left of the input field")
	f.IntVarP(&flagLines, "lines", "l", 0, "Show items in a grid with this many rows")
	f.IntVarP(&flagColumns, "columns", "g", 0, "Number of grid columns")
	f.StringVar(&flagFilter, "filter", "", "Print the items matching a query and exit")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default $XDG_CONFIG_HOME/sift/config.yaml)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write a debug log to this file (or set SIFT_LOG)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, session.ErrCancelled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
