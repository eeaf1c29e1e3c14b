package main

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/barchart/buffer"
	"github.com/lixenwraith/barchart/config"
	"github.com/lixenwraith/barchart/logging"
)

func newRenderCmd(opts *options) *cobra.Command {
	var ansi, tty bool

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the configured bars",
		Long: `Render draws one body row per bar, then either embeds each bar's value in
the body (mode "embedded") or centers the value and label under it (mode "caption").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.v, opts.found)
			if err != nil {
				return err
			}
			c, err := newChart(cfg)
			if err != nil {
				return err
			}

			ctx := logging.AppendCtx(logging.PackageCtx("render"), slog.String("mode", cfg.Mode))
			buf := c.render()
			opts.logger.DebugContext(ctx, "rendered chart",
				"bars", len(cfg.Bars),
				"width", buf.Area().Width,
				"height", buf.Area().Height)

			switch {
			case tty:
				return show(buf)
			case ansi:
				return writeLines(cmd.OutOrStdout(), buf.ANSI(nil))
			default:
				return writeLines(cmd.OutOrStdout(), buf.Lines())
			}
		},
	}

	renderCmd.Flags().String("mode", config.ModeEmbedded, "placement mode: embedded or caption")
	renderCmd.Flags().Int("bar-width", 4, "columns per bar")
	renderCmd.Flags().Int("gap", 1, "columns between bars")
	renderCmd.Flags().Int("padding", 0, "blank cells around the chart")
	renderCmd.Flags().String("title", "", "title centered above the bars")
	renderCmd.Flags().BoolVar(&ansi, "ansi", false, "print with ANSI styles")
	renderCmd.Flags().BoolVar(&tty, "tty", false, "show on the terminal until a key is pressed")
	return renderCmd
}

// show draws buf on the terminal until a key is pressed
func show(buf *buffer.Buffer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	return display(screen, buf)
}

// display flushes buf to an initialized screen, redrawing on resize, and returns on the first key
func display(screen tcell.Screen, buf *buffer.Buffer) error {
	draw := func() {
		screen.Clear()
		buf.Flush(screen)
		screen.Show()
	}
	draw()

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey, nil:
			return nil
		}
	}
}
