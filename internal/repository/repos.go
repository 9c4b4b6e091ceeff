package repository

import (
	"github.com/quickhire/quickhire-api/internal/db"
	"gorm.io/gorm"
)

// Repos bundles the repository implementations handed to services and
// middleware. Tests swap in gomock implementations.
type Repos struct {
	Job         JobRepo
	Application ApplicationRepo

	db *gorm.DB
}

func New() *Repos {
	return NewWithDB(db.DB)
}

func NewWithDB(gormDB *gorm.DB) *Repos {
	return &Repos{
		Job:         NewJobRepo(gormDB),
		Application: NewApplicationRepo(gormDB),
		db:          gormDB,
	}
}

// Transaction runs fn against transaction-scoped repositories, committing
// when fn returns nil and rolling back otherwise. Repos assembled without a
// database handle (mock repos) run fn directly.
func (r *Repos) Transaction(fn func(tx *Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Repos{
			Job:         r.Job.WithTx(tx),
			Application: r.Application.WithTx(tx),
			db:          tx,
		})
	})
}
