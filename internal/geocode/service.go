// Package geocode resolves a parsed city/state pair to coordinates. The
// result is advisory: on exhausted retries the service returns the sentinel
// (0,0) instead of failing the caller's pipeline.
package geocode

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"cityscope/internal/providers/openstreetmap"
	"cityscope/internal/types"
)

// SearchProvider is the forward-geocoding source.
type SearchProvider interface {
	Search(ctx context.Context, city, state string) (*openstreetmap.SearchResult, error)
}

type Service interface {
	// Locate returns coordinates for a city/state, or the sentinel (0,0)
	// when geocoding is unavailable. It never returns an error.
	Locate(ctx context.Context, city, state string) types.Coords
}

type geocodeService struct {
	provider       SearchProvider
	attempts       int
	attemptTimeout time.Duration
	retryDelay     time.Duration
	logger         *slog.Logger
}

// Options bound the retry loop. Zero values fall back to the defaults:
// 3 attempts, 10s per attempt, 500ms between attempts.
type Options struct {
	Attempts       int
	AttemptTimeout time.Duration
	RetryDelay     time.Duration
}

func NewService(provider SearchProvider, opts Options, logger *slog.Logger) Service {
	if opts.Attempts <= 0 {
		opts.Attempts = 3
	}
	if opts.AttemptTimeout <= 0 {
		opts.AttemptTimeout = 10 * time.Second
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 500 * time.Millisecond
	}
	return &geocodeService{
		provider:       provider,
		attempts:       opts.Attempts,
		attemptTimeout: opts.AttemptTimeout,
		retryDelay:     opts.RetryDelay,
		logger:         logger.With("component", "geocode-service"),
	}
}

func (s *geocodeService) Locate(ctx context.Context, city, state string) types.Coords {
	var lastErr error

	for attempt := 1; attempt <= s.attempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
		result, err := s.provider.Search(attemptCtx, city, state)
		cancel()

		if err == nil {
			coords, parseErr := parseCoords(result)
			if parseErr == nil {
				return coords
			}
			err = parseErr
		}

		lastErr = err
		s.logger.Debug("geocode attempt failed",
			"city", city,
			"state", state,
			"attempt", attempt,
			"error", err,
		)

		if attempt < s.attempts {
			select {
			case <-time.After(s.retryDelay):
			case <-ctx.Done():
				lastErr = ctx.Err()
				attempt = s.attempts
			}
		}
	}

	s.logger.Warn("geocoding unavailable, using sentinel coordinates",
		"city", city,
		"state", state,
		"attempts", s.attempts,
		"error", lastErr,
	)
	return types.SentinelCoords()
}

func parseCoords(result *openstreetmap.SearchResult) (types.Coords, error) {
	lat, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return types.Coords{}, err
	}
	lon, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return types.Coords{}, err
	}
	return types.NewCoords(lat, lon), nil
}
