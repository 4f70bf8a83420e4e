// Package main provides unitcalc, a command-line calculator for the numeric
// kinds of this module.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/born-ml/numeric/internal/config"
)

const version = "v0.1.0-dev"

// options holds the global flags. Flags left unset fall back to the config
// file, then to config.Default.
type options struct {
	configPath string
	color      string
	precision  int
	locale     string
	msgpack    bool

	cfg config.Config
	out *output
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "unitcalc",
		Short:         "Inspect, convert and compute with numeric kinds",
		Long:          `unitcalc exposes the integer, float, fixed-point and complex layers of the numeric module on the command line.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	root.PersistentFlags().StringVar(&opts.color, "color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().IntVar(&opts.precision, "precision", -1, "fraction digits for floats (-1 for shortest)")
	root.PersistentFlags().StringVar(&opts.locale, "locale", "", "BCP 47 locale for digit grouping")
	root.PersistentFlags().BoolVar(&opts.msgpack, "msgpack", false, "also print the msgpack encoding of complex and fixed results")

	root.AddCommand(newInfoCmd(opts))
	root.AddCommand(newBitsCmd(opts))
	root.AddCommand(newCastCmd(opts))
	root.AddCommand(newComplexCmd(opts))
	root.AddCommand(newFixedCmd(opts))
	root.AddCommand(newVersionCmd(opts))

	return root
}

func (o *options) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Color = o.color
	}
	if flags.Changed("precision") {
		cfg.Precision = o.precision
	}
	if flags.Changed("locale") {
		cfg.Locale = o.locale
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	o.cfg = cfg
	o.out = newOutput(cmd.OutOrStdout(), cfg, isTerminal(os.Stdout))
	return nil
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
