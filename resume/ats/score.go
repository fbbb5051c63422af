// Package ats scores a resume snapshot against a deduction rule table and
// produces human-readable improvement suggestions.
package ats

import "resumeai-backend/resume/model"

// Config controls the scoring run. Zero-value fields fall back to defaults.
type Config struct {
	Baseline int
	MaxScore int
	// ElasticMax allows bonuses to push the score above MaxScore. The default
	// caps the score at MaxScore.
	ElasticMax bool
	Rules      []Rule
	Bonuses    []Bonus
}

// DefaultConfig returns the canonical scoring configuration.
func DefaultConfig() Config {
	return Config{
		Baseline: 90,
		MaxScore: 100,
		Rules:    DefaultRules(),
		Bonuses:  DefaultBonuses(),
	}
}

// Report is the scoring result.
type Report struct {
	Score       int      `json:"score"`
	MaxScore    int      `json:"maxScore"`
	Percentage  int      `json:"percentage"`
	Grade       string   `json:"grade"`
	Suggestions []string `json:"suggestions"`
}

// Score evaluates a resume against the config's rule table. The input must be
// a normalized ResumeData (non-nil nested slices); Score is pure and
// deterministic.
func Score(data model.ResumeData, cfg Config) Report {
	if cfg.Baseline <= 0 {
		cfg.Baseline = 90
	}
	if cfg.MaxScore <= 0 {
		cfg.MaxScore = 100
	}
	if cfg.Rules == nil {
		cfg.Rules = DefaultRules()
	}
	if cfg.Bonuses == nil {
		cfg.Bonuses = DefaultBonuses()
	}

	score := cfg.Baseline
	suggestions := []string{}
	for _, rule := range cfg.Rules {
		if rule.Failed(data) {
			score -= rule.Penalty
			suggestions = append(suggestions, rule.Suggestion)
		}
	}
	for _, bonus := range cfg.Bonuses {
		if bonus.Met(data) {
			score += bonus.Points
		}
	}

	if score < 0 {
		score = 0
	}
	if !cfg.ElasticMax && score > cfg.MaxScore {
		score = cfg.MaxScore
	}

	percentage := score * 100 / cfg.MaxScore
	return Report{
		Score:       score,
		MaxScore:    cfg.MaxScore,
		Percentage:  percentage,
		Grade:       GradeFor(percentage),
		Suggestions: suggestions,
	}
}

// GradeFor maps a percentage to a letter grade.
func GradeFor(percentage int) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}
