package strength

import (
	"context"
	"errors"
	"fmt"

	apperrors "github.com/jwalitptl/passcheck/pkg/errors"
	"github.com/jwalitptl/passcheck/pkg/generator"
	"github.com/jwalitptl/passcheck/pkg/logger"
	"github.com/jwalitptl/passcheck/pkg/metrics"
	"github.com/jwalitptl/passcheck/pkg/strength"
)

// Generator produces passwords that satisfy every requirement
type Generator interface {
	Generate(length int) (generator.Generated, error)
}

// Catalog describes the rule set and tier table for presentation surfaces
type Catalog struct {
	Requirements []strength.Requirement `json:"requirements"`
	Tiers        []strength.Tier        `json:"tiers"`
}

// Service evaluates and generates passwords for the HTTP and CLI adapters
type Service struct {
	gen           Generator
	metrics       *metrics.Metrics
	defaultLength int
}

// Option configures a Service
type Option func(*Service)

// WithMetrics records evaluations and generations on m
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithDefaultLength sets the length used when a caller passes zero
func WithDefaultLength(n int) Option {
	return func(s *Service) {
		s.defaultLength = n
	}
}

// NewService creates a Service backed by gen
func NewService(gen Generator, opts ...Option) *Service {
	s := &Service{
		gen:           gen,
		defaultLength: generator.DefaultLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Evaluate scores password and records the outcome
func (s *Service) Evaluate(ctx context.Context, password string) strength.Result {
	res := strength.Evaluate(password)
	if s.metrics != nil {
		s.metrics.Evaluations.WithLabelValues(res.Tier.Label).Inc()
		s.metrics.EvaluationScores.Observe(float64(res.Score))
	}
	logger.FromContext(ctx).Debug("password evaluated", "score", res.Score, "tier", res.Tier.Label)
	return res
}

// Generate creates a password of the given length; zero selects the
// configured default.
func (s *Service) Generate(ctx context.Context, length int) (generator.Generated, error) {
	if length == 0 {
		length = s.defaultLength
	}

	out, err := s.gen.Generate(length)
	if err != nil {
		s.observeGeneration("error", length)
		if errors.Is(err, generator.ErrInvalidLength) {
			return generator.Generated{}, apperrors.BadRequest(
				fmt.Sprintf("password length must be between %d and %d", generator.MinLength, generator.MaxLength), err)
		}
		logger.FromContext(ctx).Error(err, "password generation failed")
		return generator.Generated{}, apperrors.Internal(err)
	}

	s.observeGeneration("success", length)
	logger.FromContext(ctx).Debug("password generated", "length", length)
	return out, nil
}

func (s *Service) observeGeneration(status string, length int) {
	if s.metrics == nil {
		return
	}
	s.metrics.Generations.WithLabelValues(status).Inc()
	if status == "success" {
		s.metrics.GeneratedLength.Observe(float64(length))
	}
}

// Requirements returns the rule set and tier table
func (s *Service) Requirements() Catalog {
	return Catalog{
		Requirements: strength.Requirements(),
		Tiers:        strength.Tiers(),
	}
}
