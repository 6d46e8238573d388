package replay

import "log/slog"

// Option configures Run.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger Run reports reallocations and steps to.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
