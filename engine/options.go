package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for Execute()
// ============================================================================

// DefaultMinLogScale is the lower bound of the value axis in log scale.
const DefaultMinLogScale = 0.01

// Option configures chart shaping via functional options pattern.
type Option func(*Config)

// Config is the declarative form of the chart options. It doubles as the
// on-disk shape of the config file.
type Config struct {
	Title       string  `json:"title,omitempty" yaml:"title"`
	Percentual  bool    `json:"isPercentual" yaml:"isPercentual"`
	LogScale    bool    `json:"isLogScale" yaml:"isLogScale"`
	Cutoff      int     `json:"cutoff" yaml:"cutoff"`
	MinLogScale float64 `json:"minLogScale" yaml:"minLogScale"`
	Stacked     bool    `json:"isStacked" yaml:"isStacked"`
}

// DefaultConfig returns the options of a chart nobody configured.
func DefaultConfig() Config {
	return Config{MinLogScale: DefaultMinLogScale}
}

// Normalized replaces out-of-range values with their defaults.
// Negative cutoffs disable collapsing; a non-positive log minimum would
// put log(0) on the axis, so it falls back to DefaultMinLogScale.
func (c Config) Normalized() Config {
	if c.Cutoff < 0 {
		c.Cutoff = 0
	}
	if c.MinLogScale <= 0 {
		c.MinLogScale = DefaultMinLogScale
	}
	return c
}

// WithCutoff sets how many rows stay visible while collapsed. 0 disables collapsing.
func WithCutoff(cutoff int) Option {
	return func(c *Config) {
		c.Cutoff = cutoff
	}
}

// WithPercentual formats values as percentages.
func WithPercentual(on bool) Option {
	return func(c *Config) {
		c.Percentual = on
	}
}

// WithLogScale switches the value axis to log scale starting at min.
func WithLogScale(min float64) Option {
	return func(c *Config) {
		c.LogScale = true
		c.MinLogScale = min
	}
}

// WithStacked stacks the series of each row into a single bar.
func WithStacked(on bool) Option {
	return func(c *Config) {
		c.Stacked = on
	}
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(c *Config) {
		c.Title = title
	}
}

// WithConfig replaces every option with cfg.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// NewConfig resolves functional options into a normalized Config.
func NewConfig(opts ...Option) Config {
	return applyOptions(opts)
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.Normalized()
}
