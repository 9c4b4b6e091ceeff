package repository

import (
	"strings"

	"github.com/quickhire/quickhire-api/internal/domain/job"
	"gorm.io/gorm"
)

// JobRepo matches the domain job repository contract.
type JobRepo interface {
	job.Repository
	WithTx(tx *gorm.DB) JobRepo
}

type DBJobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) *DBJobRepo {
	return &DBJobRepo{
		db: db,
	}
}

func (r *DBJobRepo) Create(j *job.Job) error {
	return r.db.Create(j).Error
}

func (r *DBJobRepo) FindByID(id uint) (*job.Job, error) {
	var j job.Job
	err := r.db.First(&j, id).Error
	return &j, err
}

func (r *DBJobRepo) FindAll() ([]job.Job, error) {
	var jobs []job.Job
	err := r.db.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *DBJobRepo) FindByCategory(fragment string) ([]job.Job, error) {
	return r.findByFieldContains("category", fragment)
}

func (r *DBJobRepo) FindByType(fragment string) ([]job.Job, error) {
	return r.findByFieldContains("type", fragment)
}

func (r *DBJobRepo) FindByTitle(fragment string) ([]job.Job, error) {
	return r.findByFieldContains("title", fragment)
}

// findByFieldContains performs a case-insensitive literal substring match.
// The fragment is escaped so LIKE metacharacters match themselves.
func (r *DBJobRepo) findByFieldContains(column, fragment string) ([]job.Job, error) {
	var jobs []job.Job
	pattern := "%" + escapeLike(strings.ToLower(fragment)) + "%"
	err := r.db.
		Where("LOWER("+column+") LIKE ? ESCAPE '\\'", pattern).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func (r *DBJobRepo) Update(j *job.Job) error {
	return r.db.Save(j).Error
}

func (r *DBJobRepo) Delete(id uint) error {
	return r.db.Delete(&job.Job{}, id).Error
}

func (r *DBJobRepo) WithTx(tx *gorm.DB) JobRepo {
	if tx == nil {
		return r
	}
	return &DBJobRepo{
		db: tx,
	}
}
