package texture

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// LoaderBuilderOption is a functional option for configuring a Loader.
type LoaderBuilderOption func(*loaderImpl)

// WithHTTPClient replaces the HTTP client used for http(s) locators.
//
// Parameters:
//   - c: the client to use
//
// Returns:
//   - LoaderBuilderOption: option function to apply
func WithHTTPClient(c *http.Client) LoaderBuilderOption {
	return func(l *loaderImpl) {
		l.httpClient = c
	}
}

// WithWorkers sets the maximum number of concurrent fetches.
//
// Parameters:
//   - n: worker count; values below 1 are ignored
//
// Returns:
//   - LoaderBuilderOption: option function to apply
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loaderImpl) {
		if n >= 1 {
			l.workers = n
		}
	}
}

// WithTimeout bounds each asynchronous fetch.
//
// Parameters:
//   - d: fetch timeout; non-positive values are ignored
//
// Returns:
//   - LoaderBuilderOption: option function to apply
func WithTimeout(d time.Duration) LoaderBuilderOption {
	return func(l *loaderImpl) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithLogger attaches a logger for fetch diagnostics.
//
// Parameters:
//   - logger: the logger to use
//
// Returns:
//   - LoaderBuilderOption: option function to apply
func WithLogger(logger zerolog.Logger) LoaderBuilderOption {
	return func(l *loaderImpl) {
		l.logger = logger
	}
}
