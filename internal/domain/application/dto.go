package application

// SubmitInput is the application payload from the job details page.
type SubmitInput struct {
	JobID      uint   `json:"job_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ResumeLink string `json:"resume_link"`
	CoverNote  string `json:"cover_note"`
}

// UpdateStatusInput updates the status field only.
type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}
