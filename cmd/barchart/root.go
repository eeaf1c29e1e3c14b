package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/barchart/config"
	"github.com/lixenwraith/barchart/logging"
)

var version = "dev"

// options carries persistent flag values shared by subcommands
type options struct {
	cfgFile string
	v       *viper.Viper
	found   bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "barchart",
		Short: "Render bar values and captions into a terminal cell buffer",
		Long: `barchart lays out configured bars and draws each bar's value either
embedded in the bar or as a centered caption with its label underneath.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./.barchart.toml or $HOME/.barchart.toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")

	rootCmd.AddCommand(newRenderCmd(opts), newVersionCmd())
	return rootCmd
}

// setup reads configuration and builds the logger before any subcommand runs
func (o *options) setup(cmd *cobra.Command) error {
	home, _ := os.UserHomeDir()
	o.v = config.New(o.cfgFile, home)

	if err := bindFlags(o.v, cmd.Flags()); err != nil {
		return err
	}

	found, err := config.Read(o.v)
	if err != nil {
		return err
	}
	o.found = found

	level, err := logging.ParseLevel(o.v.GetString("log_level"))
	if err != nil {
		return err
	}
	o.logger, err = logging.New(cmd.ErrOrStderr(), level, o.v.GetString("log_format"))
	if err != nil {
		return err
	}

	ctx := logging.PackageCtx("cli")
	if found {
		o.logger.DebugContext(ctx, "using config file", "path", o.v.ConfigFileUsed())
	} else {
		o.logger.DebugContext(ctx, "no config file found, using example bars")
	}
	return nil
}

// bindFlags maps hyphenated flag names onto underscored config keys
// Explicitly provided flags win over config and environment values
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	flags := map[string]string{
		"log_level":  "log-level",
		"log_format": "log-format",
		"mode":       "mode",
		"bar_width":  "bar-width",
		"gap":        "gap",
		"padding":    "padding",
		"title":      "title",
	}
	for key, name := range flags {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// writeLines prints one line per row
func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
