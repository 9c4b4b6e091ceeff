package application

import "time"

// Application statuses. The store accepts any text (open enumeration);
// these are the values the admin console uses.
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Application links an applicant's contact and resume data to one job.
// JobID is checked against the job store at submission time only; deleting
// the job later does not cascade.
type Application struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	JobID      uint      `gorm:"not null;column:job_id;index" json:"job_id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	ResumeLink string    `gorm:"size:2048;not null" json:"resume_link"`
	CoverNote  string    `gorm:"type:text" json:"cover_note"`
	Status     string    `gorm:"size:50;default:'pending'" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string {
	return "applications"
}
