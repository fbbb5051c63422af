// Package export renders a resume snapshot into a downloadable PDF.
//
// Two engines are available: the native cursor-model renderer built on
// go-pdf/fpdf, and an HTML engine that prints through headless Chrome.
package export

import (
	"context"
	"regexp"
	"strings"

	"resumeai-backend/resume/model"
)

// Engine renders a resume into PDF bytes.
type Engine interface {
	Render(ctx context.Context, data model.ResumeData) ([]byte, error)
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// FileName derives the download filename from the resume owner's full name.
func FileName(fullName string) string {
	name := whitespacePattern.ReplaceAllString(strings.TrimSpace(fullName), "_")
	if name == "" {
		return "Resume.pdf"
	}
	return name + "_Resume.pdf"
}
