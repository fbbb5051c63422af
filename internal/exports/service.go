package exports

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"resumeai-backend/internal/resumes"
	"resumeai-backend/internal/shared/metrics"
	"resumeai-backend/internal/shared/storage/object"
	"resumeai-backend/resume/export"
)

type Service struct {
	Resumes *resumes.Service
	Engine  export.Engine
	Store   object.ObjectStore
	Repo    Repo
}

func NewService(resumeSvc *resumes.Service, engine export.Engine, store object.ObjectStore, repo Repo) *Service {
	return &Service{Resumes: resumeSvc, Engine: engine, Store: store, Repo: repo}
}

// Export renders the resume, persists the artifact under the owner's
// namespace and records the export. The rendered bytes are returned so
// the handler can stream them without a second store round trip.
func (s *Service) Export(ctx context.Context, resumeID string) (Export, []byte, error) {
	resume, err := s.Resumes.Get(ctx, resumeID)
	if err != nil {
		return Export{}, nil, err
	}
	if err := resume.Data.Validate(); err != nil {
		return Export{}, nil, ErrIncompleteResume
	}

	start := time.Now()
	pdf, err := s.Engine.Render(ctx, resume.Data)
	if err != nil {
		metrics.IncExportFailed()
		return Export{}, nil, fmt.Errorf("render resume: %w", err)
	}
	metrics.ObserveExportDurationMs(float64(time.Since(start).Milliseconds()))

	fileName := export.FileName(resume.Data.PersonalInfo.FullName)
	storageKey, size, _, err := s.Store.Save(ctx, resume.UserID, fileName, bytes.NewReader(pdf))
	if err != nil {
		metrics.IncExportFailed()
		return Export{}, nil, fmt.Errorf("store artifact: %w", err)
	}

	record := Export{
		ID:         uuid.NewString(),
		ResumeID:   resume.ID,
		UserID:     resume.UserID,
		FileName:   fileName,
		StorageKey: storageKey,
		SizeBytes:  size,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		metrics.IncExportFailed()
		return Export{}, nil, fmt.Errorf("record export: %w", err)
	}

	metrics.IncExport()
	return record, pdf, nil
}

// Download re-streams a stored artifact.
func (s *Service) Download(ctx context.Context, exportID string) (Export, io.ReadCloser, error) {
	record, err := s.Repo.GetByID(ctx, exportID)
	if err != nil {
		return Export{}, nil, err
	}
	body, err := s.Store.Open(ctx, record.StorageKey)
	if err != nil {
		return Export{}, nil, fmt.Errorf("open artifact: %w", err)
	}
	return record, body, nil
}

// History lists a resume's exports, newest first. The resume is looked
// up first so a missing resume reads as 404 rather than an empty list.
func (s *Service) History(ctx context.Context, resumeID string) ([]Export, error) {
	if _, err := s.Resumes.Get(ctx, resumeID); err != nil {
		return nil, err
	}
	return s.Repo.ListByResume(ctx, resumeID)
}
