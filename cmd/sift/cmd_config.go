package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/huh"
	"github.com/ruminaider/sift/internal/config"
	"github.com/spf13/cobra"
)

var (
	configInitForce bool
	configShowTOML  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the sift config file",
	Long: heredoc.Doc(`
		sift reads $XDG_CONFIG_HOME/sift/config.yaml, or config.toml when no
		YAML file exists. Command-line flags override the file.
	`),
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if err := promptConfig(&cfg); err != nil {
			return fmt.Errorf("prompt cancelled: %w", err)
		}
		cfg.Normalize()
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := effectiveConfig(cmd)
		if err != nil {
			return err
		}
		var data []byte
		if configShowTOML {
			data, err = config.MarshalTOML(cfg)
		} else {
			data, err = config.Marshal(cfg)
		}
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

func promptConfig(cfg *config.Config) error {
	lines := strconv.Itoa(cfg.Lines)
	columns := strconv.Itoa(cfg.Columns)

	themes := make([]huh.Option[string], 0, len(config.Themes))
	for _, name := range config.Themes {
		themes = append(themes, huh.NewOption(name, name))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Prompt").
				Placeholder("e.g. run:").
				Value(&cfg.Prompt),
			huh.NewInput().
				Title("Grid rows").
				Description("0 shows items on a single line").
				Value(&lines).
				Validate(nonNegative),
			huh.NewInput().
				Title("Grid columns").
				Value(&columns).
				Validate(nonNegative),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Match case-insensitively?").
				Value(&cfg.CaseInsensitive),
			huh.NewConfirm().
				Title("Only match items starting with the query?").
				Value(&cfg.Prefix),
			huh.NewConfirm().
				Title("Draw at the bottom of the screen?").
				Value(&cfg.Bottom),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themes...).
				Value(&cfg.Theme),
		),
	).Run()
	if err != nil {
		return err
	}

	// Both inputs passed nonNegative.
	cfg.Lines, _ = strconv.Atoi(lines)
	cfg.Columns, _ = strconv.Atoi(columns)
	return nil
}

func nonNegative(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("enter a whole number")
	}
	if n < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configShowCmd.Flags().BoolVar(&configShowTOML, "toml", false, "Print as TOML instead of YAML")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
