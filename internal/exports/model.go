package exports

import "time"

// Export records one rendered PDF artifact.
type Export struct {
	ID         string    `json:"id"`
	ResumeID   string    `json:"resumeId"`
	UserID     string    `json:"userId"`
	FileName   string    `json:"fileName"`
	StorageKey string    `json:"-"`
	SizeBytes  int64     `json:"sizeBytes"`
	CreatedAt  time.Time `json:"createdAt"`
}
