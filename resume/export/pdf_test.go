package export

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeai-backend/resume/model"
)

func sampleResume() model.ResumeData {
	d := model.NewResumeData()
	d.PersonalInfo = model.PersonalInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 555 0100",
		Location: "Austin, TX",
		Website:  "https://janedoe.dev",
	}
	d.Summary = "Backend engineer focused on data plumbing and reliability."
	d.Experience = []model.Experience{
		{
			ID:          "e1",
			Company:     "Acme",
			Position:    "Senior Engineer",
			StartDate:   "Jan 2020",
			Current:     true,
			Description: "Cut p99 latency by 40%.",
		},
	}
	d.Education = []model.Education{
		{ID: "ed1", School: "State University", Degree: "BSc", FieldOfStudy: "Computer Science", StartDate: "2012", EndDate: "2016", GPA: "3.8"},
	}
	d.Skills = []string{"Go", "SQL", "Docker"}
	return d
}

func TestNativeEngineRendersPDF(t *testing.T) {
	engine := NewNativeEngine()
	out, err := engine.Render(context.Background(), sampleResume())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out[:5]), "%PDF-"), "output should be a PDF document")
}

func TestNativeEngineRejectsMissingName(t *testing.T) {
	engine := NewNativeEngine()
	d := sampleResume()
	d.PersonalInfo.FullName = ""
	_, err := engine.Render(context.Background(), d)
	assert.Error(t, err)
}

func TestNativeEngineHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewNativeEngine().Render(ctx, sampleResume())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNativeEnginePaginatesLongResumes(t *testing.T) {
	d := sampleResume()
	long := strings.Repeat("Shipped features and maintained services across the platform. ", 10)
	d.Experience = nil
	for i := 0; i < 30; i++ {
		d.Experience = append(d.Experience, model.Experience{
			ID:          "e" + strings.Repeat("x", i%3+1),
			Company:     "Acme",
			Position:    "Engineer",
			StartDate:   "2015",
			EndDate:     "2019",
			Description: long + "Improved throughput by 25%.",
		})
	}

	short, err := NewNativeEngine().Render(context.Background(), sampleResume())
	require.NoError(t, err)
	multi, err := NewNativeEngine().Render(context.Background(), d)
	require.NoError(t, err)

	// A multi-page document carries more page objects than a single page one.
	assert.Greater(t, strings.Count(string(multi), "/Page"), strings.Count(string(short), "/Page"))
}

func TestRenderHTMLSectionOmission(t *testing.T) {
	d := sampleResume()
	d.Education = []model.Education{}
	d.Projects = []model.Project{}

	html, err := RenderHTML(d)
	require.NoError(t, err)

	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "<h2>Summary</h2>")
	assert.Contains(t, html, "<h2>Experience</h2>")
	assert.NotContains(t, html, "<h2>Education</h2>")
	assert.NotContains(t, html, "<h2>Projects</h2>")
}

func TestRenderHTMLCurrentEntryShowsPresent(t *testing.T) {
	d := sampleResume()
	d.Experience[0].EndDate = "Dec 2024" // stale value left by the form; must be suppressed

	html, err := RenderHTML(d)
	require.NoError(t, err)
	assert.Contains(t, html, "Present")
	assert.NotContains(t, html, "Dec 2024")
}

func TestFileName(t *testing.T) {
	tests := []struct {
		fullName string
		want     string
	}{
		{"Jane Doe", "Jane_Doe_Resume.pdf"},
		{"  Ada   Lovelace ", "Ada_Lovelace_Resume.pdf"},
		{"Prince", "Prince_Resume.pdf"},
		{"", "Resume.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.fullName))
	}
}
