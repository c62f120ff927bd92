package service

import (
	"strings"
	"time"

	"fyyur/internal/model"
	apperrors "fyyur/pkg/app_errors"
)

// RecentLimit is how many listings the home page shows per kind.
const RecentLimit = 10

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces the reference clock used to split shows into past and upcoming.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// validateListing checks the fields shared by venues and artists after Normalize.
func validateListing(name, city, state string, genres []string) error {
	fields := make(map[string]string)
	if name == "" {
		fields["name"] = "is required"
	}
	if strings.TrimSpace(city) == "" {
		fields["city"] = "is required"
	}
	if !model.IsState(state) {
		fields["state"] = "must be a US state code"
	}
	if len(genres) == 0 {
		fields["genres"] = "is required"
	}
	for _, g := range genres {
		if !model.IsGenre(g) {
			fields["genres"] = "unknown genre " + g
			break
		}
	}
	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields}
	}
	return nil
}
