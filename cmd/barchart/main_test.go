package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/barchart/config"
)

func exampleConfig(mode string) *config.Config {
	return &config.Config{Mode: mode, BarWidth: 4, Gap: 1, Bars: config.ExampleBars()}
}

func TestChartEmbedded(t *testing.T) {
	c, err := newChart(exampleConfig(config.ModeEmbedded))
	require.NoError(t, err)

	buf := c.render()
	assert.Equal(t, []string{
		"▆10▆ 20M█ █50█ █40█",
		" C1 " + " " + "    " + " " + " C1 " + " " + " C2 ",
	}, buf.Lines())

	// Value style wins over the red fill, the override text keeps the green fill
	assert.Equal(t, tcell.ColorBlue, buf.Cell(1, 0).Style.Fg)
	assert.Equal(t, tcell.ColorRed, buf.Cell(0, 0).Style.Fg)
	assert.Equal(t, tcell.ColorGreen, buf.Cell(5, 0).Style.Fg)
}

func TestChartCaption(t *testing.T) {
	c, err := newChart(exampleConfig(config.ModeCaption))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"▆▆▆▆ ████ ████ ████",
		" 10 " + " " + "20M " + " " + " 50 " + " " + " 40 ",
		" C1 " + " " + "    " + " " + " C1 " + " " + " C2 ",
	}, c.render().Lines())
}

func TestChartEmbeddedOverflow(t *testing.T) {
	long := "12345"
	cfg := &config.Config{
		Mode:     config.ModeEmbedded,
		BarWidth: 2,
		Gap:      2,
		Styles:   config.Styles{Overflow: config.StyleConfig{Fg: "yellow"}},
		Bars:     []config.BarConfig{{Value: 1, Text: &long}, {Value: 2}},
	}
	c, err := newChart(cfg)
	require.NoError(t, err)

	buf := c.render()
	// The next bar body is drawn after the spill and covers its last column
	assert.Equal(t, "12342█", buf.Lines()[0])
	assert.Equal(t, tcell.ColorYellow, buf.Cell(2, 0).Style.Fg)
	assert.Equal(t, tcell.ColorDefault, buf.Cell(1, 0).Style.Fg)
}

func TestChartCaptionZeroValueWithOverride(t *testing.T) {
	m := "20M"
	cfg := &config.Config{
		Mode:     config.ModeCaption,
		BarWidth: 5,
		Bars:     []config.BarConfig{{Value: 0, Text: &m, Label: "Z"}},
	}
	c, err := newChart(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"█████", "     ", "  Z  "}, c.render().Lines())
}

func TestChartTitle(t *testing.T) {
	cfg := exampleConfig(config.ModeEmbedded)
	cfg.Title = "Sales"
	cfg.Styles.Title = config.StyleConfig{Fg: "yellow"}
	c, err := newChart(cfg)
	require.NoError(t, err)

	buf := c.render()
	assert.Equal(t, []string{
		"       Sales       ",
		"▆10▆ 20M█ █50█ █40█",
		" C1 " + " " + "    " + " " + " C1 " + " " + " C2 ",
	}, buf.Lines())
	assert.Equal(t, tcell.ColorYellow, buf.Cell(7, 0).Style.Fg)
}

func TestChartTitleIsTruncated(t *testing.T) {
	cfg := &config.Config{
		Mode:     config.ModeCaption,
		Title:    "Quarterly revenue",
		BarWidth: 4,
		Gap:      1,
		Bars:     []config.BarConfig{{Value: 3}, {Value: 4}},
	}
	c, err := newChart(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Quarterl…",
		"████ ████",
		" 3    4  ",
		"         ",
	}, c.render().Lines())
}

func TestChartPaddingAndBackground(t *testing.T) {
	cfg := &config.Config{
		Mode:     config.ModeEmbedded,
		BarWidth: 3,
		Padding:  1,
		Styles:   config.Styles{Background: config.StyleConfig{Bg: "navy"}},
		Bars:     []config.BarConfig{{Value: 7, Label: "a", Style: config.StyleConfig{Fg: "red"}}},
	}
	c, err := newChart(cfg)
	require.NoError(t, err)

	buf := c.render()
	assert.Equal(t, []string{
		"     ",
		" █7█ ",
		"  a  ",
		"     ",
	}, buf.Lines())

	// Background shows through the padding and under the bar body
	assert.Equal(t, tcell.ColorNavy, buf.Cell(0, 0).Style.Bg)
	assert.Equal(t, tcell.ColorNavy, buf.Cell(1, 1).Style.Bg)
	assert.Equal(t, tcell.ColorRed, buf.Cell(1, 1).Style.Fg)
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.toml")
	body := `
mode = "embedded"
bar_width = 3

[[bars]]
value = 7
label = "a"

[[bars]]
value = 42
label = "b"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, _, err := runCLI(t, "render", "--config", path, "--mode", "caption", "--gap", "0")
	require.NoError(t, err)
	assert.Equal(t, "██████\n 7 42 \n a  b \n", out)

	out, _, err = runCLI(t, "render", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "█7█ 42█\n a   b \n", out)

	out, _, err = runCLI(t, "render", "--config", path, "--title", "ab", "--padding", "1")
	require.NoError(t, err)
	assert.Equal(t, "         \n   ab    \n █7█ 42█ \n  a   b  \n         \n", out)
}

func TestRenderCommandANSI(t *testing.T) {
	chdir(t, t.TempDir())

	out, _, err := runCLI(t, "render", "--ansi")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 2)
}

func TestRenderCommandRejectsBadMode(t *testing.T) {
	chdir(t, t.TempDir())

	_, stderr, err := runCLI(t, "render", "--mode", "diagonal")
	require.ErrorIs(t, err, config.ErrInvalidMode)
	assert.Contains(t, stderr, "invalid mode")
}

func TestDebugLogging(t *testing.T) {
	chdir(t, t.TempDir())

	_, stderr, err := runCLI(t, "render", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"rendered chart"`)
	assert.Contains(t, stderr, `"package":"render"`)
	assert.Contains(t, stderr, `"mode":"embedded"`)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestDisplay(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(19, 2)

	c, err := newChart(exampleConfig(config.ModeEmbedded))
	require.NoError(t, err)

	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	require.NoError(t, display(s, c.render()))

	ch, _, _, _ := s.GetContent(2, 0)
	assert.Equal(t, '0', ch)
	ch, _, _, _ = s.GetContent(16, 1)
	assert.Equal(t, 'C', ch)
}
