package controller

import (
	"log/slog"
	"time"

	"github.com/hyojunguy/turtle-trading-app/internal/repo"
)

type Controller struct {
	repo   *repo.Repository
	logger *slog.Logger
}

// Option is the functional options pattern for Controller
type Option func(*Controller)

func WithRepository(r *repo.Repository) Option {
	return func(c *Controller) {
		c.repo = r
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New creates a new Controller with options
func New(opts ...Option) (*Controller, error) {
	c := &Controller{}
	for _, opt := range opts {
		opt(c)
	}
	if c.repo == nil {
		return nil, ErrNilRepository
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c, nil
}

// isoNow is the journal timestamp format: ISO-8601 local time with
// microsecond precision. Lexicographic order matches chronological order,
// which the list queries rely on.
func isoNow() string {
	return time.Now().Format("2006-01-02T15:04:05.000000")
}
