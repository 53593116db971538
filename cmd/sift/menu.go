package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-runewidth"
	"github.com/ruminaider/sift/cmd/sift/tui"
	"github.com/ruminaider/sift/internal/config"
	"github.com/ruminaider/sift/internal/items"
	"github.com/ruminaider/sift/internal/match"
	"github.com/ruminaider/sift/internal/paths"
	"github.com/ruminaider/sift/internal/session"
	"github.com/spf13/cobra"
)

var errNoItems = errors.New("no items: pass them as arguments or pipe them on stdin")

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return err
	}

	store, err := loadItems(args, os.Stdin, term.IsTerminal(os.Stdin.Fd()), cfg.MaxItems)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("filter") {
		return printLines(os.Stdout, match.Match(store, flagFilter, cfg.MatchOptions()).Texts())
	}

	// The menu draws on stderr so stdout stays free for the result.
	if !term.IsTerminal(os.Stderr.Fd()) {
		return errors.New("stderr is not a terminal; use --filter for non-interactive matching")
	}

	closeLog, err := setupLog(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	res, err := runMenu(store, cfg)
	if err != nil {
		return err
	}
	if err := res.Err(); err != nil {
		return err
	}
	return printLines(os.Stdout, res.Lines)
}

// configPath returns --config if given, otherwise the config file found in
// the config directory.
func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return paths.FindConfig()
}

// effectiveConfig loads the config file and applies the flags the user set.
func effectiveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return config.Config{}, err
	}
	applyFlags(cmd, &cfg)
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("bottom") {
		cfg.Bottom = flagBottom
	}
	if f.Changed("ignore-case") {
		cfg.CaseInsensitive = flagIgnoreCase
	}
	if f.Changed("prefix") {
		cfg.Prefix = flagPrefix
	}
	if f.Changed("prompt") {
		cfg.Prompt = flagPrompt
	}
	if f.Changed("lines") {
		cfg.Lines = flagLines
	}
	if f.Changed("columns") {
		cfg.Columns = flagColumns
	}
}

// loadItems takes items from args, or from r when there are no args and r is
// not a terminal.
func loadItems(args []string, r io.Reader, interactive bool, max int) (*items.Store, error) {
	if len(args) > 0 {
		return items.New(args, max)
	}
	if interactive {
		return nil, errNoItems
	}
	return items.Load(r, max)
}

// setupLog sends the standard logger to path, or SIFT_LOG, and discards it
// otherwise so nothing is written over the menu.
func setupLog(path string) (func(), error) {
	if path == "" {
		path = os.Getenv("SIFT_LOG")
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "sift")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return func() { f.Close() }, nil
}

func runMenu(store *items.Store, cfg config.Config) (session.Result, error) {
	sess, err := session.New(store, session.Config{
		Match:    cfg.MatchOptions(),
		Capacity: cfg.Capacity,
	})
	if err != nil {
		return session.Result{}, err
	}
	keys, err := tui.NewKeyMap(cfg.Keys)
	if err != nil {
		return session.Result{}, err
	}

	model := tui.New(sess, tui.Options{
		Prompt:    cfg.Prompt,
		Lines:     cfg.Lines,
		Columns:   cfg.Columns,
		Bottom:    cfg.Bottom,
		ItemWidth: store.MaxWidth(runewidth.StringWidth),
		Styles:    tui.NewStyles(cfg.Theme),
		Keys:      keys,
	})
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInputTTY(),
		tea.WithOutput(os.Stderr),
	)
	final, err := p.Run()
	if err != nil {
		return session.Result{}, fmt.Errorf("running menu: %w", err)
	}
	res := final.(tui.Model).Result()
	if !res.Done {
		// Killed before a command finished the session.
		return session.Result{Done: true, Cancelled: true}, nil
	}
	log.Printf("done: %d line(s)", len(res.Lines))
	return res, nil
}

func printLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
