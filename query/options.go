package query

// ============================================================================
// OPTIONS — Functional options for Run()
// ============================================================================

// Option configures query execution.
type Option func(*config)

type config struct {
	defaultSort *Sort // applied when Query.Sort is nil
	maxLimit    int   // 0 = uncapped
}

// WithDefaultSort sets the sort used when a query does not name one.
func WithDefaultSort(field string, desc bool) Option {
	return func(c *config) {
		c.defaultSort = &Sort{Field: field, Desc: desc}
	}
}

// WithMaxLimit caps the number of rows any query can return.
func WithMaxLimit(n int) Option {
	return func(c *config) {
		c.maxLimit = n
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
