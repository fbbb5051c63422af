package suggest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastProvider() *MockProvider {
	return &MockProvider{}
}

func TestGenerateSummaryMentionsTitleAndSkills(t *testing.T) {
	got, err := fastProvider().GenerateSummary(context.Background(), SummaryInput{
		JobTitle:        "Software Engineer",
		YearsExperience: 6,
		Skills:          []string{"Go", "SQL", "Docker", "Redis"},
	})
	require.NoError(t, err)
	assert.Contains(t, got, "Software Engineer")
	assert.Contains(t, got, "6+ years")
	assert.Contains(t, got, "Go, SQL, Docker")
	assert.NotContains(t, got, "Redis", "only the top three skills are used")
}

func TestGenerateSummaryUnknownTitleIsGeneric(t *testing.T) {
	got, err := fastProvider().GenerateSummary(context.Background(), SummaryInput{})
	require.NoError(t, err)
	assert.Contains(t, got, "professional")
}

func TestOptimizeDescriptionBulletsAndAchievement(t *testing.T) {
	got, err := fastProvider().OptimizeDescription(context.Background(),
		"Maintained internal tools. Worked with the support team.", "Software Engineer")
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "• "), "line %q should be a bullet", line)
	}
	assert.Contains(t, lines[0], "Maintained internal tools")
}

func TestOptimizeDescriptionUnknownTitleFallsBack(t *testing.T) {
	got, err := fastProvider().OptimizeDescription(context.Background(), "Did things.", "Underwater Basket Weaver")
	require.NoError(t, err)
	found := false
	for _, generic := range genericAchievements {
		if strings.Contains(got, generic) {
			found = true
		}
	}
	assert.True(t, found, "expected a generic achievement line in %q", got)
}

func TestSuggestSkillsFiltersBidirectionalSubstring(t *testing.T) {
	got, err := fastProvider().SuggestSkills(context.Background(), "Backend Developer", []string{"postgresql", "go"})
	require.NoError(t, err)

	assert.NotContains(t, got, "PostgreSQL")
	assert.NotContains(t, got, "Go")
	assert.Contains(t, got, "Redis")
}

func TestSuggestSkillsUnknownTitleIsEmptyNotError(t *testing.T) {
	got, err := fastProvider().SuggestSkills(context.Background(), "Astronaut", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDelayHonorsCancellation(t *testing.T) {
	p := &MockProvider{MinDelay: time.Minute, MaxDelay: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := p.GenerateSummary(ctx, SummaryInput{JobTitle: "x"})
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("cancelled generation did not return promptly")
	}
}
