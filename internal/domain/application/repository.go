package application

// Repository defines data access for applications. Listings are
// newest-first. UpdateStatus touches only the status column (plus the
// updated_at stamp) and is idempotent.
type Repository interface {
	Create(a *Application) error
	FindByID(id uint) (*Application, error)
	FindAll() ([]Application, error)
	FindByJobID(jobID uint) ([]Application, error)
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}
