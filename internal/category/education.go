package category

import (
	"context"
	"fmt"

	"cityscope/internal/types"
)

var educationKeys = []string{
	"avg_school_rating",
	"top_school",
	"student_teacher_ratio",
	"college_readiness",
	"graduation_rate",
	"ap_participation",
	"test_scores",
}

type educationResolver struct{}

// NewEducationResolver builds the table-backed education resolver.
func NewEducationResolver() Resolver {
	return educationResolver{}
}

func (educationResolver) Category() string {
	return types.CategoryEducation
}

func (educationResolver) Fallback() types.CategoryRecord {
	return types.NewFallbackRecord(types.CategoryEducation, educationKeys)
}

func (educationResolver) Resolve(_ context.Context, loc types.ParsedLocation, _ types.Coords) (types.CategoryRecord, error) {
	p := profileFor(loc.City)

	fields := []types.MetricField{
		{Key: "avg_school_rating", Value: fmt.Sprintf("%.1f", p.EducationRating)},
		{Key: "top_school", Value: fmt.Sprintf("%s High School", loc.City)},
		{Key: "student_teacher_ratio", Value: "16:1"},
		{Key: "college_readiness", Value: "85%"},
		{Key: "graduation_rate", Value: "92%"},
		{Key: "ap_participation", Value: "45%"},
		{Key: "test_scores", Value: "1250 SAT avg"},
	}

	return types.NewCategoryRecord(types.CategoryEducation, types.SourceTable, fields), nil
}
