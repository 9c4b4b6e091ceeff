package repository

import (
	"github.com/quickhire/quickhire-api/internal/domain/application"
	"gorm.io/gorm"
)

// ApplicationRepo matches the domain application repository contract.
type ApplicationRepo interface {
	application.Repository
	WithTx(tx *gorm.DB) ApplicationRepo
}

type DBApplicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *DBApplicationRepo {
	return &DBApplicationRepo{
		db: db,
	}
}

func (r *DBApplicationRepo) Create(a *application.Application) error {
	return r.db.Create(a).Error
}

func (r *DBApplicationRepo) FindByID(id uint) (*application.Application, error) {
	var a application.Application
	err := r.db.First(&a, id).Error
	return &a, err
}

func (r *DBApplicationRepo) FindAll() ([]application.Application, error) {
	var apps []application.Application
	err := r.db.Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) FindByJobID(jobID uint) ([]application.Application, error) {
	var apps []application.Application
	err := r.db.Where("job_id = ?", jobID).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) UpdateStatus(id uint, status string) error {
	return r.db.Model(&application.Application{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status}).Error
}

func (r *DBApplicationRepo) Delete(id uint) error {
	return r.db.Delete(&application.Application{}, id).Error
}

func (r *DBApplicationRepo) WithTx(tx *gorm.DB) ApplicationRepo {
	if tx == nil {
		return r
	}
	return &DBApplicationRepo{
		db: tx,
	}
}
