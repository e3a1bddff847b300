package store

import "github.com/hupe1980/matchgo"

type options struct {
	logger *matchgo.Logger
}

// Option configures a Store.
type Option func(*options)

// WithLogger sets the logger used for debug records on Add and Find.
//
// Example:
//
//	logger := matchgo.NewJSONLogger(slog.LevelDebug)
//	s, err := store.New[Model](64, store.WithLogger(logger))
func WithLogger(logger *matchgo.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func defaultOptions() options {
	return options{
		logger: matchgo.NoopLogger(),
	}
}
