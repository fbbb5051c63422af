package model

import (
	"errors"
	"strings"
)

// ResumeData is the canonical resume payload shared by the builder UI,
// the scoring engine, and the export renderers.
type ResumeData struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Projects     []Project    `json:"projects"`
	Skills       []string     `json:"skills"`
}

// PersonalInfo captures top-of-resume contact details. All fields are plain
// strings; only FullName is required for export/save gating.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Experience is one work-history entry. When Current is true the end date is
// not meaningful and must not be rendered or exported.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is one education entry.
type Education struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	GPA          string `json:"gpa,omitempty"`
}

// Project is one project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
}

// NewResumeData returns a fully-initialized empty resume. Nested slices are
// never nil so downstream consumers can read without nil checks.
func NewResumeData() ResumeData {
	return ResumeData{
		Experience: []Experience{},
		Education:  []Education{},
		Projects:   []Project{},
		Skills:     []string{},
	}
}

// Normalize fills nil slices in place so a decoded payload satisfies the
// fully-initialized contract expected by scoring and export.
func (d *ResumeData) Normalize() {
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Skills == nil {
		d.Skills = []string{}
	}
	for i := range d.Projects {
		if d.Projects[i].Technologies == nil {
			d.Projects[i].Technologies = []string{}
		}
	}
}

// Validate enforces the export/save gate: a non-empty full name.
func (d ResumeData) Validate() error {
	if strings.TrimSpace(d.PersonalInfo.FullName) == "" {
		return errors.New("fullName is required")
	}
	return nil
}

// HasSummary reports whether the summary section should be rendered.
func (d ResumeData) HasSummary() bool { return strings.TrimSpace(d.Summary) != "" }

// HasExperience reports whether the experience section should be rendered.
func (d ResumeData) HasExperience() bool { return len(d.Experience) > 0 }

// HasEducation reports whether the education section should be rendered.
func (d ResumeData) HasEducation() bool { return len(d.Education) > 0 }

// HasProjects reports whether the projects section should be rendered.
func (d ResumeData) HasProjects() bool { return len(d.Projects) > 0 }

// HasSkills reports whether the skills section should be rendered.
func (d ResumeData) HasSkills() bool { return len(d.Skills) > 0 }

// DateRange formats "start – end" for display. A current entry always reads
// "start – Present" regardless of any stored end date.
func DateRange(start, end string, current bool) string {
	start = strings.TrimSpace(start)
	if current {
		end = "Present"
	} else {
		end = strings.TrimSpace(end)
	}
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start
	}
	return start + " – " + end
}

// JoinNonEmpty joins the non-empty values with sep, used for the contact and
// web lines of the header.
func JoinNonEmpty(sep string, values ...string) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, sep)
}
