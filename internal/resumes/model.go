package resumes

import (
	"time"

	"resumeai-backend/resume/model"
)

// Resume is the stored aggregate: a titled snapshot of builder data
// owned by a user.
type Resume struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Title     string           `json:"title"`
	Data      model.ResumeData `json:"data"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// Summary is the slim listing shape used by user lookups.
type Summary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updatedAt"`
}
