package ats

import (
	"regexp"
	"strings"

	"resumeai-backend/resume/model"
)

// Rule is one deduction check. When Failed returns true the rule's penalty is
// subtracted from the baseline and its suggestion is appended to the report.
type Rule struct {
	Name       string
	Penalty    int
	Suggestion string
	Failed     func(model.ResumeData) bool
}

// Bonus is one additive check, applied after deductions.
type Bonus struct {
	Name   string
	Points int
	Met    func(model.ResumeData) bool
}

// quantifiedPattern matches a digit, percent, or dollar figure inside an
// experience description.
var quantifiedPattern = regexp.MustCompile(`[\d%$]`)

// DefaultRules is the canonical deduction table.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:       "full_name",
			Penalty:    15,
			Suggestion: "Add your full name",
			Failed: func(d model.ResumeData) bool {
				return strings.TrimSpace(d.PersonalInfo.FullName) == ""
			},
		},
		{
			Name:       "email",
			Penalty:    10,
			Suggestion: "Add your email address",
			Failed: func(d model.ResumeData) bool {
				return strings.TrimSpace(d.PersonalInfo.Email) == ""
			},
		},
		{
			Name:       "summary",
			Penalty:    15,
			Suggestion: "Add a professional summary",
			Failed: func(d model.ResumeData) bool {
				return !d.HasSummary()
			},
		},
		{
			Name:       "experience",
			Penalty:    25,
			Suggestion: "Add work experience",
			Failed: func(d model.ResumeData) bool {
				return !d.HasExperience()
			},
		},
		{
			Name:       "skills_few",
			Penalty:    10,
			Suggestion: "Add more relevant skills (aim for 8-12)",
			Failed: func(d model.ResumeData) bool {
				return len(d.Skills) < 5
			},
		},
		{
			Name:       "skills_many",
			Penalty:    5,
			Suggestion: "Trim your skills list to the most relevant (aim for 8-12)",
			Failed: func(d model.ResumeData) bool {
				return len(d.Skills) > 15
			},
		},
		{
			Name:       "experience_descriptions",
			Penalty:    15,
			Suggestion: "Add descriptions to all work experience entries",
			Failed: func(d model.ResumeData) bool {
				if !d.HasExperience() {
					return false
				}
				for _, exp := range d.Experience {
					if strings.TrimSpace(exp.Description) == "" {
						return true
					}
				}
				return false
			},
		},
		{
			Name:       "quantified_achievements",
			Penalty:    10,
			Suggestion: "Add quantifiable achievements (numbers, %, $) to your experience",
			Failed: func(d model.ResumeData) bool {
				if !d.HasExperience() {
					return false
				}
				for _, exp := range d.Experience {
					if quantifiedPattern.MatchString(exp.Description) {
						return false
					}
				}
				return true
			},
		},
	}
}

// DefaultBonuses is the canonical bonus table.
func DefaultBonuses() []Bonus {
	return []Bonus{
		{
			Name:   "projects",
			Points: 5,
			Met: func(d model.ResumeData) bool {
				return d.HasProjects()
			},
		},
	}
}
