package job

// Repository defines data access for job postings. Listing methods return
// newest-first ordering; filters are case-insensitive substring matches on
// a single field.
type Repository interface {
	Create(j *Job) error
	FindByID(id uint) (*Job, error)
	FindAll() ([]Job, error)
	FindByCategory(fragment string) ([]Job, error)
	FindByType(fragment string) ([]Job, error)
	FindByTitle(fragment string) ([]Job, error)
	Update(j *Job) error
	Delete(id uint) error
}
