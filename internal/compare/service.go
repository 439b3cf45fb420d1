// Package compare aggregates the location pipeline: parse, advisory geocode,
// then independent category resolution merged into one LocationRecord.
package compare

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cityscope/internal/category"
	"cityscope/internal/geocode"
	"cityscope/internal/location"
	"cityscope/internal/types"
)

type Service interface {
	// Resolve turns a raw "City, ST" query into a fully-populated
	// LocationRecord. It returns an error only for input errors (the
	// location package's sentinel errors); category and geocode failures
	// degrade to fallback values instead.
	Resolve(ctx context.Context, rawQuery string) (*types.LocationRecord, error)
}

type compareService struct {
	geocoder  geocode.Service
	resolvers []category.Resolver
	logger    *slog.Logger
}

func NewService(geocoder geocode.Service, resolvers []category.Resolver, logger *slog.Logger) Service {
	return &compareService{
		geocoder:  geocoder,
		resolvers: resolvers,
		logger:    logger.With("component", "compare-service"),
	}
}

func (s *compareService) Resolve(ctx context.Context, rawQuery string) (*types.LocationRecord, error) {
	parsed, err := location.Parse(rawQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to parse location %q: %w", rawQuery, err)
	}

	// Advisory: sentinel (0,0) on failure, never an error.
	coords := s.geocoder.Locate(ctx, parsed.City, parsed.State)

	// Resolvers are independent and order-insensitive; run them in
	// parallel. A failed resolver contributes its fallback record and is
	// logged once here, at the substitution boundary.
	records := make([]types.CategoryRecord, len(s.resolvers))
	var wg sync.WaitGroup
	wg.Add(len(s.resolvers))

	for i, r := range s.resolvers {
		go func(i int, r category.Resolver) {
			defer wg.Done()

			rec, err := r.Resolve(ctx, parsed, coords)
			if err != nil {
				s.logger.Warn("category resolution failed, using fallback",
					"category", r.Category(),
					"location", parsed.Display(),
					"error", err,
				)
				rec = r.Fallback()
			}
			records[i] = rec
		}(i, r)
	}

	wg.Wait()

	record := &types.LocationRecord{
		Query:      rawQuery,
		Parsed:     parsed,
		Coords:     coords,
		ResolvedAt: time.Now().UTC(),
	}
	for _, rec := range records {
		switch rec.Category {
		case types.CategoryEducation:
			record.Education = rec
		case types.CategoryRealEstate:
			record.RealEstate = rec
		case types.CategoryDemographics:
			record.Demographics = rec
		case types.CategorySafety:
			record.Safety = rec
		case types.CategoryQualityOfLife:
			record.QualityOfLife = rec
		}
	}

	return record, nil
}
