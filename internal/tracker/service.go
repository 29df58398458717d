// Package tracker implements the task activation engine, day-rollover
// reconciliation, habit streaks, and calorie logging on top of a storage
// provider. All operations are synchronous, single-actor mutations.
package tracker

import (
	"errors"
	"time"

	"github.com/maxgreen/daykeep/internal/constants"
	"github.com/maxgreen/daykeep/internal/models"
	"github.com/maxgreen/daykeep/internal/storage"
)

// Validation and policy errors. Callers are expected to re-prompt on
// validation failures; ErrProjectTaskActive is a blocking condition the user
// resolves by completing the existing active task first.
var (
	ErrEmptyText         = errors.New("text must not be empty")
	ErrEmptyName         = errors.New("name must not be empty")
	ErrInvalidCalories   = errors.New("calories must be a positive number")
	ErrInvalidProtein    = errors.New("protein must not be negative")
	ErrProjectTaskActive = errors.New("this unordered project already has an active task; complete it first before activating another")
)

// Service applies user intents to the record store. It owns the logical
// current date for the session, established by BeginSession.
type Service struct {
	store       storage.Provider
	ids         *models.IDGenerator
	now         func() time.Time
	currentDate string
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
		s.ids = models.NewIDGenerator(now)
	}
}

func NewService(store storage.Provider, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
		ids:   models.NewIDGenerator(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentDate returns the logical current date (YYYY-MM-DD).
func (s *Service) CurrentDate() string {
	if s.currentDate == "" {
		return s.today()
	}
	return s.currentDate
}

func (s *Service) today() string {
	return s.now().Format(constants.DateFormat)
}

// Store exposes the underlying provider, for presentation reads.
func (s *Service) Store() storage.Provider {
	return s.store
}
