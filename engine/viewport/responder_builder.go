package viewport

import "github.com/rs/zerolog"

// ResponderBuilderOption is a function that configures a responder during construction.
type ResponderBuilderOption func(*responder)

// WithBreakpoint sets the width below which the compact profile applies. Non-positive
// values are ignored.
//
// Parameters:
//   - px: breakpoint width in pixels
//
// Returns:
//   - ResponderBuilderOption: a function that applies the breakpoint option
func WithBreakpoint(px int) ResponderBuilderOption {
	return func(r *responder) {
		if px > 0 {
			r.breakpoint = px
		}
	}
}

// WithCompactProfile replaces the narrow-viewport profile.
//
// Parameters:
//   - p: the profile
//
// Returns:
//   - ResponderBuilderOption: a function that applies the profile option
func WithCompactProfile(p Profile) ResponderBuilderOption {
	return func(r *responder) {
		r.compact = p
	}
}

// WithFullProfile replaces the wide-viewport profile.
//
// Parameters:
//   - p: the profile
//
// Returns:
//   - ResponderBuilderOption: a function that applies the profile option
func WithFullProfile(p Profile) ResponderBuilderOption {
	return func(r *responder) {
		r.full = p
	}
}

// WithLogger sets the logger for profile changes.
//
// Parameters:
//   - logger: the zerolog logger
//
// Returns:
//   - ResponderBuilderOption: a function that applies the logger option
func WithLogger(logger zerolog.Logger) ResponderBuilderOption {
	return func(r *responder) {
		r.logger = logger
	}
}
