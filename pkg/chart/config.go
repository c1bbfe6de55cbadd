package chart

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a [Config] fails validation.
var ErrInvalidConfig = errors.New("invalid chart config")

// Margin is the space between the view box edge and the plot area.
type Margin struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// Config holds the layout and animation constants of the chart.
type Config struct {
	Margin Margin `yaml:"margin"`

	// Breakpoint is the viewport width below which the plot width follows
	// the container instead of using FixedWidth.
	Breakpoint float64 `yaml:"breakpoint"`
	// FixedWidth is the plot width on wide viewports.
	FixedWidth float64 `yaml:"fixedWidth"`
	// FallbackContainerWidth is used when the container width is unknown.
	FallbackContainerWidth float64 `yaml:"fallbackContainerWidth"`

	RowHeight   float64 `yaml:"rowHeight"`
	BandPadding float64 `yaml:"bandPadding"`

	// LabelOffsetX is the gap between a bar's end and its value label.
	LabelOffsetX float64 `yaml:"labelOffsetX"`
	// LabelOffsetY shifts the label baseline below the band center.
	LabelOffsetY float64 `yaml:"labelOffsetY"`

	EnterDuration     time.Duration `yaml:"enterDuration"`
	UpdateDuration    time.Duration `yaml:"updateDuration"`
	ExitDuration      time.Duration `yaml:"exitDuration"`
	LabelExitDuration time.Duration `yaml:"labelExitDuration"`

	// Axis labels longer than MaxLabelLength runes are cut to TruncateLength
	// runes followed by Ellipsis.
	MaxLabelLength int    `yaml:"maxLabelLength"`
	TruncateLength int    `yaml:"truncateLength"`
	Ellipsis       string `yaml:"ellipsis"`
}

// DefaultConfig returns the stock chart configuration.
func DefaultConfig() Config {
	return Config{
		Margin:                 Margin{Top: 20, Right: 100, Bottom: 30, Left: 100},
		Breakpoint:             768,
		FixedWidth:             600,
		FallbackContainerWidth: 600,
		RowHeight:              25,
		BandPadding:            0.1,
		LabelOffsetX:           5,
		LabelOffsetY:           5,
		EnterDuration:          500 * time.Millisecond,
		UpdateDuration:         500 * time.Millisecond,
		ExitDuration:           400 * time.Millisecond,
		LabelExitDuration:      400 * time.Millisecond,
		MaxLabelLength:         8,
		TruncateLength:         6,
		Ellipsis:               "...",
	}
}

// LoadConfig reads a YAML file on top of [DefaultConfig]. Keys missing from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks that every field is usable for layout.
func (c Config) Validate() error {
	var merr error

	if c.RowHeight <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("rowHeight must be positive, got %v", c.RowHeight))
	}

	if c.BandPadding < 0 || c.BandPadding >= 1 {
		merr = multierror.Append(merr, fmt.Errorf("bandPadding must be in [0, 1), got %v", c.BandPadding))
	}

	if c.FixedWidth <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("fixedWidth must be positive, got %v", c.FixedWidth))
	}

	if c.Margin.Top < 0 || c.Margin.Right < 0 || c.Margin.Bottom < 0 || c.Margin.Left < 0 {
		merr = multierror.Append(merr, errors.New("margins must not be negative"))
	}

	durations := []struct {
		name string
		d    time.Duration
	}{
		{"enterDuration", c.EnterDuration},
		{"updateDuration", c.UpdateDuration},
		{"exitDuration", c.ExitDuration},
		{"labelExitDuration", c.LabelExitDuration},
	}
	for _, d := range durations {
		if d.d < 0 {
			merr = multierror.Append(merr, fmt.Errorf("%s must not be negative, got %s", d.name, d.d))
		}
	}

	if c.MaxLabelLength <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("maxLabelLength must be positive, got %d", c.MaxLabelLength))
	}

	if c.TruncateLength <= 0 || c.TruncateLength > c.MaxLabelLength {
		merr = multierror.Append(merr, fmt.Errorf(
			"truncateLength must be in [1, maxLabelLength], got %d", c.TruncateLength))
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, merr)
	}

	return nil
}

// Truncate shortens an axis label according to the config.
func (c Config) Truncate(label string) string {
	r := []rune(label)
	if len(r) <= c.MaxLabelLength {
		return label
	}

	return string(r[:c.TruncateLength]) + c.Ellipsis
}
