package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/barchart/barchart"
	"github.com/lixenwraith/barchart/style"
	"github.com/lixenwraith/barchart/text"
)

// EnvPrefix is prepended to environment overrides, e.g. BARCHART_MODE
const EnvPrefix = "barchart"

// Placement modes
const (
	ModeEmbedded = "embedded"
	ModeCaption  = "caption"
)

var (
	ErrNoBars      = errors.New("no bars configured")
	ErrInvalidMode = errors.New("invalid mode")
)

// StyleConfig describes a style by color and modifier names
// Modifiers prefixed with '-' are forced off, Reset starts from terminal defaults
// instead of inheriting whatever lies underneath
type StyleConfig struct {
	Reset     bool     `mapstructure:"reset"`
	Fg        string   `mapstructure:"fg"`
	Bg        string   `mapstructure:"bg"`
	Modifiers []string `mapstructure:"modifiers"`
}

// Style resolves names into a style
func (s StyleConfig) Style() (style.Style, error) {
	st, err := style.Parse(s.Fg, s.Bg, s.Modifiers)
	if err != nil {
		return st, err
	}
	if s.Reset {
		return st.Patch(style.Reset()), nil
	}
	return st, nil
}

// BarConfig is one bar entry
type BarConfig struct {
	Value      uint64      `mapstructure:"value"`
	Label      string      `mapstructure:"label"`
	Text       *string     `mapstructure:"text"`
	Symbol     string      `mapstructure:"symbol"`
	Style      StyleConfig `mapstructure:"style"`
	ValueStyle StyleConfig `mapstructure:"value_style"`
}

// Styles holds chart-wide defaults the renderers fall back to
type Styles struct {
	Value      StyleConfig `mapstructure:"value"`
	Label      StyleConfig `mapstructure:"label"`
	Overflow   StyleConfig `mapstructure:"overflow"`
	Title      StyleConfig `mapstructure:"title"`
	Background StyleConfig `mapstructure:"background"`
}

// Config is the full demo configuration
type Config struct {
	Mode      string      `mapstructure:"mode"`
	Title     string      `mapstructure:"title"`
	BarWidth  int         `mapstructure:"bar_width"`
	Gap       int         `mapstructure:"gap"`
	Padding   int         `mapstructure:"padding"`
	LogLevel  string      `mapstructure:"log_level"`
	LogFormat string      `mapstructure:"log_format"`
	Styles    Styles      `mapstructure:"styles"`
	Bars      []BarConfig `mapstructure:"bars"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("mode", ModeEmbedded)
	v.SetDefault("bar_width", 4)
	v.SetDefault("gap", 1)
	v.SetDefault("padding", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
}

// New returns a viper instance reading path, or .barchart.{toml,yaml} from the working
// and home directories when path is empty
func New(path, home string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		if home != "" {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".barchart")
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Read loads the config file into v
// A missing file is not an error when no explicit path was given, found reports whether one was read
func Read(v *viper.Viper) (found bool, err error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("read config: %w", err)
	}
	return true, nil
}

// Load decodes and validates v
// Example bars stand in only when no config file was found
func Load(v *viper.Viper, found bool) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if len(c.Bars) == 0 && !found {
		c.Bars = ExampleBars()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks ranges and mode
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeEmbedded, ModeCaption:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
	if c.BarWidth < 1 {
		return fmt.Errorf("bar_width must be positive, got %d", c.BarWidth)
	}
	if c.Gap < 0 {
		return fmt.Errorf("gap must not be negative, got %d", c.Gap)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %d", c.Padding)
	}
	if len(c.Bars) == 0 {
		return ErrNoBars
	}
	return nil
}

// ChartStyles resolves value, label and overflow defaults
func (c *Config) ChartStyles() (value, label, overflow style.Style, err error) {
	if value, err = c.Styles.Value.Style(); err != nil {
		return value, label, overflow, fmt.Errorf("styles.value: %w", err)
	}
	if label, err = c.Styles.Label.Style(); err != nil {
		return value, label, overflow, fmt.Errorf("styles.label: %w", err)
	}
	if overflow, err = c.Styles.Overflow.Style(); err != nil {
		return value, label, overflow, fmt.Errorf("styles.overflow: %w", err)
	}
	return value, label, overflow, nil
}

// FrameStyles resolves the title and background styles
func (c *Config) FrameStyles() (title, background style.Style, err error) {
	if title, err = c.Styles.Title.Style(); err != nil {
		return title, background, fmt.Errorf("styles.title: %w", err)
	}
	if background, err = c.Styles.Background.Style(); err != nil {
		return title, background, fmt.Errorf("styles.background: %w", err)
	}
	return title, background, nil
}

// BuildBars converts bar entries into bars
func (c *Config) BuildBars() ([]barchart.Bar, error) {
	bars := make([]barchart.Bar, 0, len(c.Bars))
	for i, bc := range c.Bars {
		b, err := bc.Bar()
		if err != nil {
			return nil, fmt.Errorf("bars[%d]: %w", i, err)
		}
		bars = append(bars, b)
	}
	return bars, nil
}

// Bar converts the entry into a bar
func (bc BarConfig) Bar() (barchart.Bar, error) {
	fill, err := bc.Style.Style()
	if err != nil {
		return barchart.Bar{}, fmt.Errorf("style: %w", err)
	}
	valueStyle, err := bc.ValueStyle.Style()
	if err != nil {
		return barchart.Bar{}, fmt.Errorf("value_style: %w", err)
	}

	b := barchart.NewBar().
		WithValue(bc.Value).
		WithStyle(fill).
		WithValueStyle(valueStyle)
	if bc.Label != "" {
		b = b.WithLabel(text.Raw(bc.Label))
	}
	if bc.Text != nil {
		b = b.WithTextValue(*bc.Text)
	}
	return b, nil
}

// FillSymbol returns the symbol used for the bar body, a full block by default
func (bc BarConfig) FillSymbol() string {
	if bc.Symbol == "" {
		return "█"
	}
	return bc.Symbol
}

// ExampleBars is used when no bars are configured
func ExampleBars() []BarConfig {
	m := "20M"
	return []BarConfig{
		{Value: 10, Label: "C1", Symbol: "▆", Style: StyleConfig{Fg: "red"}, ValueStyle: StyleConfig{Fg: "blue"}},
		{Value: 20, Text: &m, Style: StyleConfig{Fg: "green"}},
		{Value: 50, Label: "C1"},
		{Value: 40, Label: "C2"},
	}
}
