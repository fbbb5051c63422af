package export

import (
	"bytes"
	"context"
	"strings"

	"github.com/go-pdf/fpdf"

	"resumeai-backend/resume/model"
)

// Layout constants, in millimeters on A4 paper.
const (
	pageMargin  = 20.0
	lineHeight  = 5.0
	sectionGap  = 4.0
	headerRule  = 2.0
	entryGap    = 3.0
	nameSize    = 20.0
	titleSize   = 13.0
	bodySize    = 10.0
	contactSize = 9.0
)

// NativeEngine lays the resume out with a top-to-bottom cursor on fixed-size
// pages, breaking to a new page whenever the next block would not fit.
type NativeEngine struct{}

// NewNativeEngine constructs the default PDF engine.
func NewNativeEngine() *NativeEngine {
	return &NativeEngine{}
}

// Render produces the PDF bytes for a resume. Empty sections are skipped
// entirely; a current experience entry renders "Present" in place of its end
// date.
func (e *NativeEngine) Render(ctx context.Context, data model.ResumeData) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	doc := newLayout()
	doc.header(data.PersonalInfo)

	if data.HasSummary() {
		doc.sectionTitle("Summary")
		doc.paragraph(data.Summary)
		doc.gap(sectionGap)
	}
	if data.HasExperience() {
		doc.sectionTitle("Experience")
		for _, exp := range data.Experience {
			doc.experienceEntry(exp)
		}
		doc.gap(sectionGap - entryGap)
	}
	if data.HasEducation() {
		doc.sectionTitle("Education")
		for _, edu := range data.Education {
			doc.educationEntry(edu)
		}
		doc.gap(sectionGap - entryGap)
	}
	if data.HasProjects() {
		doc.sectionTitle("Projects")
		for _, project := range data.Projects {
			doc.projectEntry(project)
		}
		doc.gap(sectionGap - entryGap)
	}
	if data.HasSkills() {
		doc.sectionTitle("Skills")
		doc.paragraph(strings.Join(data.Skills, " • "))
	}

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// layout tracks the vertical cursor across pages.
type layout struct {
	pdf          *fpdf.Fpdf
	tr           func(string) string
	y            float64
	pageWidth    float64
	pageHeight   float64
	contentWidth float64
}

func newLayout() *layout {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	w, h := pdf.GetPageSize()
	return &layout{
		pdf:          pdf,
		tr:           pdf.UnicodeTranslatorFromDescriptor(""),
		y:            pageMargin,
		pageWidth:    w,
		pageHeight:   h,
		contentWidth: w - 2*pageMargin,
	}
}

// ensureSpace starts a new page when less than needed vertical space remains.
func (l *layout) ensureSpace(needed float64) {
	if l.y+needed > l.pageHeight-pageMargin {
		l.pdf.AddPage()
		l.y = pageMargin
	}
}

func (l *layout) gap(h float64) {
	l.y += h
}

func (l *layout) header(info model.PersonalInfo) {
	l.pdf.SetFont("Helvetica", "B", nameSize)
	l.centeredLine(info.FullName, 8)

	l.pdf.SetFont("Helvetica", "", contactSize)
	if contact := model.JoinNonEmpty(" | ", info.Email, info.Phone, info.Location); contact != "" {
		l.centeredLine(contact, lineHeight)
	}
	if web := model.JoinNonEmpty(" | ", info.Website, info.LinkedIn); web != "" {
		l.centeredLine(web, lineHeight)
	}

	l.y += headerRule
	l.pdf.SetLineWidth(0.4)
	l.pdf.Line(pageMargin, l.y, l.pageWidth-pageMargin, l.y)
	l.y += sectionGap
}

func (l *layout) centeredLine(text string, advance float64) {
	if strings.TrimSpace(text) == "" {
		return
	}
	line := l.tr(text)
	x := (l.pageWidth - l.pdf.GetStringWidth(line)) / 2
	l.pdf.Text(x, l.y, line)
	l.y += advance
}

func (l *layout) sectionTitle(title string) {
	l.ensureSpace(lineHeight * 3)
	l.pdf.SetFont("Helvetica", "B", titleSize)
	l.pdf.Text(pageMargin, l.y, title)
	l.y += lineHeight + 1
}

// paragraph wraps free text to the content width and prints it line by line.
func (l *layout) paragraph(text string) {
	l.pdf.SetFont("Helvetica", "", bodySize)
	for _, line := range l.pdf.SplitText(l.tr(text), l.contentWidth) {
		l.ensureSpace(lineHeight)
		l.pdf.Text(pageMargin, l.y, line)
		l.y += lineHeight
	}
}

// titleAndDate prints a bold left-aligned title with a right-aligned date
// range on the same line.
func (l *layout) titleAndDate(title, dates string) {
	l.ensureSpace(lineHeight * 2)
	l.pdf.SetFont("Helvetica", "B", bodySize+1)
	l.pdf.Text(pageMargin, l.y, l.tr(title))
	if dates != "" {
		dates = l.tr(dates)
		l.pdf.SetFont("Helvetica", "", contactSize)
		l.pdf.Text(l.pageWidth-pageMargin-l.pdf.GetStringWidth(dates), l.y, dates)
	}
	l.y += lineHeight
}

func (l *layout) subLine(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	l.ensureSpace(lineHeight)
	l.pdf.SetFont("Helvetica", "I", bodySize)
	l.pdf.Text(pageMargin, l.y, l.tr(text))
	l.y += lineHeight
}

func (l *layout) experienceEntry(exp model.Experience) {
	l.titleAndDate(exp.Position, model.DateRange(exp.StartDate, exp.EndDate, exp.Current))
	l.subLine(exp.Company)
	if strings.TrimSpace(exp.Description) != "" {
		l.paragraph(exp.Description)
	}
	l.gap(entryGap)
}

func (l *layout) educationEntry(edu model.Education) {
	degree := model.JoinNonEmpty(" in ", edu.Degree, edu.FieldOfStudy)
	l.titleAndDate(degree, model.DateRange(edu.StartDate, edu.EndDate, false))
	school := edu.School
	if strings.TrimSpace(edu.GPA) != "" {
		school = model.JoinNonEmpty(" • ", school, "GPA: "+edu.GPA)
	}
	l.subLine(school)
	l.gap(entryGap)
}

func (l *layout) projectEntry(project model.Project) {
	l.titleAndDate(project.Name, model.DateRange(project.StartDate, project.EndDate, false))
	l.subLine(model.JoinNonEmpty(" • ", project.Technologies...))
	if strings.TrimSpace(project.Description) != "" {
		l.paragraph(project.Description)
	}
	if strings.TrimSpace(project.Link) != "" {
		l.subLine(project.Link)
	}
	l.gap(entryGap)
}
