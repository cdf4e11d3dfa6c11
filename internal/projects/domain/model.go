package domain

import "time"

// Status is the moderation state of a project. It is a closed set:
// a submission starts as pending and moves to approved or rejected
// exactly once; there is no way back to pending.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the three known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Project is a student submission. Screenshots holds exactly three
// stored filenames in upload order; it is persisted as a JSON array.
type Project struct {
	ID          int64     `json:"id"`
	ProjectName string    `json:"projectName"`
	ProjectLink string    `json:"projectLink,omitempty"`
	StudentName string    `json:"studentName,omitempty"`
	TeacherName string    `json:"teacherName,omitempty"`
	ModuleName  string    `json:"moduleName"`
	Screenshots []string  `json:"screenshots"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewSubmission carries the validated fields of an incoming submission.
// The repository forces status to pending regardless of the caller.
type NewSubmission struct {
	ProjectName string
	ProjectLink string
	StudentName string
	TeacherName string
	ModuleName  string
	Screenshots []string
}

// ScreenshotCount is the exact number of screenshots a submission must carry.
const ScreenshotCount = 3
