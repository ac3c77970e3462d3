package allocator

// Context is an explicit allocator instance: its own three size-class
// pools, its own mapping-id counter, its own Mapper, and its own
// statistics. Spec §9 calls out global mutable state (the pool heads,
// availability counters, mapping-id counter, and statistics) as
// something to encapsulate in "an explicit allocator context value,
// initialized lazily on first use," with the existing package API
// becoming thin wrappers around a default instance — see global.go.
// Doing so also lifts the single-threaded restriction from spec §5 in
// the one way spec §9 endorses: one Context per goroutine.
//
// Context itself is not safe for concurrent use; spec §5 is explicit
// that the core is single-threaded and non-reentrant.
type Context struct {
	pools         [numSizeClasses]pool
	mapper        Mapper
	fitStrategy   FitStrategy
	nextMappingID uint64
	stats         Stats
}

// Config configures a Context. The zero Config is not valid on its own;
// use NewContext, which applies DefaultConfig() first.
type Config struct {
	FitStrategy FitStrategy
	Mapper      Mapper
}

// Option mutates a Config during NewContext, in the functional-option
// shape (WithX(...) Option).
type Option func(*Config)

// WithFitStrategy selects first-fit, best-fit, or no-search-ever-grow
// behavior (spec §6, §9).
func WithFitStrategy(s FitStrategy) Option {
	return func(c *Config) { c.FitStrategy = s }
}

// WithMapper overrides the OS mapping collaborator, e.g. with a fake in
// tests.
func WithMapper(m Mapper) Option {
	return func(c *Config) { c.Mapper = m }
}

// DefaultConfig returns the configuration NewContext uses when no
// options are given: first-fit search against the platform's real OS
// mapper.
func DefaultConfig() Config {
	return Config{
		FitStrategy: FitFirstFit,
		Mapper:      NewOSMapper(),
	}
}

// NewContext builds a Context from DefaultConfig() plus any Options.
func NewContext(opts ...Option) *Context {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx := &Context{
		fitStrategy: cfg.FitStrategy,
		mapper:      cfg.Mapper,
	}

	for i := range ctx.pools {
		ctx.pools[i].class = SizeClass(i)
	}

	return ctx
}

func (ctx *Context) poolFor(c SizeClass) *pool {
	return &ctx.pools[c]
}
