// Package suggest defines the suggestion provider contract for fabricating
// resume text. The mock provider is the default; a real inference-backed
// provider can be selected by configuration.
package suggest

import "context"

// SummaryInput carries the fields a summary is generated from.
type SummaryInput struct {
	JobTitle        string   `json:"jobTitle"`
	YearsExperience int      `json:"yearsExperience"`
	Skills          []string `json:"skills"`
}

// Provider generates resume content. Implementations must honor ctx
// cancellation; unknown job titles yield generic results, never errors.
type Provider interface {
	GenerateSummary(ctx context.Context, input SummaryInput) (string, error)
	OptimizeDescription(ctx context.Context, description, jobTitle string) (string, error)
	SuggestSkills(ctx context.Context, jobTitle string, existing []string) ([]string, error)
}
