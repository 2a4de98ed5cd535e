package readbench

import "github.com/user/readbench/pkg/config"

// ConfigBuilder provides a fluent interface for building config.Config.
type ConfigBuilder struct {
	config config.Config
}

// NewConfigBuilder creates a ConfigBuilder starting from config.Defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{config: config.Defaults()}
}

// NewConfigBuilderFrom creates a ConfigBuilder starting from cfg, typically
// one loaded from a YAML file.
func NewConfigBuilderFrom(cfg config.Config) *ConfigBuilder {
	return &ConfigBuilder{config: cfg}
}

// Build returns the configuration. It is not validated.
func (b *ConfigBuilder) Build() config.Config {
	return b.config
}

// WithPath sets the file to benchmark.
func (b *ConfigBuilder) WithPath(path string) *ConfigBuilder {
	b.config.Path = path
	return b
}

// WithStrategies selects strategies by name.
func (b *ConfigBuilder) WithStrategies(names ...string) *ConfigBuilder {
	b.config.Strategies = names
	return b
}

// WithBenchTime sets the bench time ("1s" or "100x").
func (b *ConfigBuilder) WithBenchTime(benchTime string) *ConfigBuilder {
	b.config.BenchTime = benchTime
	return b
}

// WithCount sets the number of benchmark runs per strategy.
func (b *ConfigBuilder) WithCount(count int) *ConfigBuilder {
	b.config.Count = count
	return b
}

// WithVerify enables or disables cross-strategy verification.
func (b *ConfigBuilder) WithVerify(verify bool) *ConfigBuilder {
	b.config.Verify = verify
	return b
}

// WithFixture generates the file with size bytes when it is missing.
func (b *ConfigBuilder) WithFixture(size, seed int64, keep bool) *ConfigBuilder {
	b.config.Fixture = config.FixtureConfig{Size: size, Seed: seed, Keep: keep}
	return b
}

// WithSummary sets the Markdown summary path.
func (b *ConfigBuilder) WithSummary(path string) *ConfigBuilder {
	b.config.Output.Summary = path
	return b
}

// WithChart sets the PNG chart path.
func (b *ConfigBuilder) WithChart(path string) *ConfigBuilder {
	b.config.Output.Chart = path
	return b
}

// WithChartSize sets the chart dimensions in pixels.
func (b *ConfigBuilder) WithChartSize(width, height int) *ConfigBuilder {
	b.config.Output.ChartWidth = width
	b.config.Output.ChartHeight = height
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.config.LogLevel = level
	return b
}
