package resumes

import (
	"context"
	"sort"
	"sync"

	"resumeai-backend/resume/model"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	resumes map[string]Resume
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{resumes: make(map[string]Resume)}
}

func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resumes[resume.ID] = cloneResume(resume)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.resumes[resumeID]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return cloneResume(resume), nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Resume{}
	for _, resume := range r.resumes {
		if resume.UserID == userID {
			out = append(out, cloneResume(resume))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, resume Resume, replaceChildren bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.resumes[resume.ID]
	if !ok {
		return ErrNotFound
	}
	if !replaceChildren {
		resume.Data.Experience = existing.Data.Experience
		resume.Data.Education = existing.Data.Education
		resume.Data.Projects = existing.Data.Projects
	}
	resume.CreatedAt = existing.CreatedAt
	r.resumes[resume.ID] = cloneResume(resume)
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resumes[resumeID]; !ok {
		return ErrNotFound
	}
	delete(r.resumes, resumeID)
	return nil
}

func (r *MemoryRepo) Summaries(ctx context.Context, userID string, limit int) ([]Summary, error) {
	all, err := r.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := []Summary{}
	for _, resume := range all {
		out = append(out, Summary{ID: resume.ID, Title: resume.Title, UpdatedAt: resume.UpdatedAt})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func cloneResume(resume Resume) Resume {
	out := resume
	out.Data.Experience = make([]model.Experience, len(resume.Data.Experience))
	copy(out.Data.Experience, resume.Data.Experience)
	out.Data.Education = make([]model.Education, len(resume.Data.Education))
	copy(out.Data.Education, resume.Data.Education)
	out.Data.Projects = make([]model.Project, len(resume.Data.Projects))
	for i, proj := range resume.Data.Projects {
		proj.Technologies = append([]string{}, proj.Technologies...)
		out.Data.Projects[i] = proj
	}
	out.Data.Skills = append([]string{}, resume.Data.Skills...)
	return out
}
