// Package gfaio implements the parser/serializer surface described in
// spec §6: a line tokenizer and record-type dispatch that turn GFA1/GFA2
// text into a *graph.Graph, and a writer that walks a graph back into
// text in a stable order.
package gfaio

// config collects the options ReadFile/ReadString accept. ToFile and ToS
// take no options.
type config struct {
	validate bool
}

// Option configures a read or write operation.
type Option func(*config)

// WithValidate controls whether the graph enforces record-level
// invariants (e.g. the LN/sequence-length match) as lines are inserted.
// Default true.
func WithValidate(validate bool) Option {
	return func(c *config) { c.validate = validate }
}

func newConfig(opts []Option) config {
	c := config{validate: true}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
