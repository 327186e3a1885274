package bucketalloc

import "log/slog"

// DefaultArenaSize is used when Config.ArenaSize is left at zero.
const DefaultArenaSize uint64 = 500 << 20 // 500 MiB

// DefaultScopeDepth is the default bounded stack depth for a Scope.
const DefaultScopeDepth = 64

// Config configures a new Arena. The zero value is valid: NewArena fills in
// DefaultArenaSize, the standard class-share table, and default
// provider/reporter/renderer/logger implementations.
type Config struct {
	// ArenaSize is the target arena size in bytes. Zero defaults to
	// DefaultArenaSize (500 MiB).
	ArenaSize uint64

	// ClassShares overrides the per-class percentage table. Zero value
	// uses ClassShares (5/10/15/20/25/25%).
	ClassShares [NumClasses]float64

	// BaseAlign overrides the unit each class's arena share is rounded up
	// to. Zero defaults to BaseAlign (8). Query rounds request sizes with the
	// BaseAlign constant, not with this field.
	BaseAlign uint32

	Logger   *slog.Logger
	Provider ArenaProvider
	Reporter DebugReporter
	Renderer StatusRenderer
}

// Option mutates a Config. Grounded in the orizon compiler's
// internal/allocator.Option functional-options pattern.
type Option func(*Config)

// WithArenaSize sets the target arena size.
func WithArenaSize(size uint64) Option {
	return func(c *Config) { c.ArenaSize = size }
}

// WithClassShares overrides the per-class percentage table.
func WithClassShares(shares [NumClasses]float64) Option {
	return func(c *Config) { c.ClassShares = shares }
}

// WithBaseAlign overrides the base alignment unit.
func WithBaseAlign(align uint32) Option {
	return func(c *Config) { c.BaseAlign = align }
}

// WithLogger overrides the structured logger used for diagnostic output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithProvider overrides the backing-memory provider.
func WithProvider(p ArenaProvider) Option {
	return func(c *Config) { c.Provider = p }
}

// WithReporter overrides the debug reporter used for non-recoverable errors.
func WithReporter(r DebugReporter) Option {
	return func(c *Config) { c.Reporter = r }
}

// WithRenderer overrides the status renderer used by PrintStatus.
func WithRenderer(r StatusRenderer) Option {
	return func(c *Config) { c.Renderer = r }
}

func (c Config) withDefaults() Config {
	if c.ArenaSize == 0 {
		c.ArenaSize = DefaultArenaSize
	}
	if c.ClassShares == ([NumClasses]float64{}) {
		c.ClassShares = ClassShares
	}
	if c.BaseAlign == 0 {
		c.BaseAlign = BaseAlign
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Provider == nil {
		c.Provider = defaultProvider()
	}
	if c.Reporter == nil {
		c.Reporter = newSlogReporter(c.Logger)
	}
	if c.Renderer == nil {
		c.Renderer = plainRenderer{}
	}
	return c
}
