// SPDX-License-Identifier: MIT

package alexander

import "go.uber.org/zap"

// Option customises Compute.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

func newOptions(opts ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger routes stage diagnostics to l at Debug level.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("alexander: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}
