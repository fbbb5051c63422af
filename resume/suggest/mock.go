package suggest

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// skillTable maps a job title (exact, case-insensitive) to suggested skills.
var skillTable = map[string][]string{
	"software engineer": {"Go", "Python", "SQL", "Docker", "Kubernetes", "AWS", "Git", "REST APIs"},
	"frontend developer": {"JavaScript", "TypeScript", "React", "CSS", "HTML", "Webpack", "Accessibility"},
	"backend developer":  {"Go", "PostgreSQL", "Redis", "gRPC", "Message Queues", "Linux", "CI/CD"},
	"data analyst":       {"SQL", "Python", "Tableau", "Excel", "Statistics", "Data Visualization"},
	"product manager":    {"Roadmapping", "Stakeholder Management", "A/B Testing", "Analytics", "Agile"},
	"devops engineer":    {"Terraform", "Kubernetes", "AWS", "CI/CD", "Prometheus", "Bash", "Ansible"},
}

// achievementTable maps a job title to canned achievement lines appended by
// OptimizeDescription.
var achievementTable = map[string][]string{
	"software engineer": {
		"Reduced deployment time by 40% through pipeline automation",
		"Improved system reliability to 99.9% uptime",
	},
	"frontend developer": {
		"Improved page load time by 35% through bundle optimization",
		"Increased conversion rate by 20% with redesigned checkout flow",
	},
	"data analyst": {
		"Delivered insights that drove a 15% increase in quarterly revenue",
		"Automated reporting, saving 10+ hours per week",
	},
}

var genericAchievements = []string{
	"Exceeded performance targets by 25% year over year",
	"Recognized for driving cross-team initiatives to completion",
}

// MockProvider fabricates suggestion text from in-memory templates, with an
// artificial delay standing in for network latency. The delay is cancellable
// through ctx so an aborted request never resolves late and clobbers newer
// input.
type MockProvider struct {
	MinDelay time.Duration
	MaxDelay time.Duration
}

// NewMockProvider constructs a MockProvider with the standard 500-1000ms
// simulated latency.
func NewMockProvider() *MockProvider {
	return &MockProvider{MinDelay: 500 * time.Millisecond, MaxDelay: time.Second}
}

func (p *MockProvider) delay(ctx context.Context) error {
	d := p.MinDelay
	if p.MaxDelay > p.MinDelay {
		d += time.Duration(rand.Int63n(int64(p.MaxDelay - p.MinDelay)))
	}
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GenerateSummary fabricates a professional summary from the job title,
// years of experience, and top skills.
func (p *MockProvider) GenerateSummary(ctx context.Context, input SummaryInput) (string, error) {
	if err := p.delay(ctx); err != nil {
		return "", err
	}

	title := strings.TrimSpace(input.JobTitle)
	if title == "" {
		title = "professional"
	}
	years := input.YearsExperience
	if years < 0 {
		years = 0
	}

	skills := input.Skills
	if len(skills) > 3 {
		skills = skills[:3]
	}
	skillClause := ""
	if len(skills) > 0 {
		skillClause = fmt.Sprintf(" Skilled in %s.", strings.Join(skills, ", "))
	}

	experienceClause := "Motivated"
	if years > 0 {
		experienceClause = fmt.Sprintf("Results-driven %s with %d+ years of experience", title, years)
	} else {
		experienceClause = fmt.Sprintf("Motivated %s eager to apply modern practices", title)
	}

	return fmt.Sprintf(
		"%s delivering measurable impact through collaboration and continuous improvement.%s Seeking to contribute to a high-performing team.",
		experienceClause, skillClause,
	), nil
}

// OptimizeDescription converts sentences to bullet points and appends a
// canned achievement line for the job title.
func (p *MockProvider) OptimizeDescription(ctx context.Context, description, jobTitle string) (string, error) {
	if err := p.delay(ctx); err != nil {
		return "", err
	}

	var bullets []string
	for _, sentence := range strings.Split(description, ".") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		bullets = append(bullets, "• "+sentence)
	}

	achievements := genericAchievements
	if lines, ok := achievementTable[normalizeTitle(jobTitle)]; ok {
		achievements = lines
	}
	bullets = append(bullets, "• "+achievements[len(bullets)%len(achievements)])

	return strings.Join(bullets, "\n"), nil
}

// SuggestSkills returns skills for the job title, excluding any the user
// already has. The exclusion is a case-insensitive substring match in both
// directions, so "SQL" filters "PostgreSQL" and vice versa.
func (p *MockProvider) SuggestSkills(ctx context.Context, jobTitle string, existing []string) ([]string, error) {
	if err := p.delay(ctx); err != nil {
		return nil, err
	}

	candidates, ok := skillTable[normalizeTitle(jobTitle)]
	if !ok {
		return []string{}, nil
	}

	out := []string{}
	for _, candidate := range candidates {
		if !hasOverlap(candidate, existing) {
			out = append(out, candidate)
		}
	}
	return out, nil
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

func hasOverlap(candidate string, existing []string) bool {
	lower := strings.ToLower(candidate)
	for _, have := range existing {
		haveLower := strings.ToLower(strings.TrimSpace(have))
		if haveLower == "" {
			continue
		}
		if strings.Contains(lower, haveLower) || strings.Contains(haveLower, lower) {
			return true
		}
	}
	return false
}
