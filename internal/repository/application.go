package repository

import (
	"github.com/femfund/femfund/internal/domain/application"
	"gorm.io/gorm"
)

type ApplicationRepo interface {
	CreateApplication(a *application.Application) error
	GetApplicationByID(id uint) (application.Application, error)
	ListApplicationsByUser(userID uint) ([]application.Application, error)
	ListAllApplications(page, limit int) ([]application.Application, error)
	UpdateApplication(a *application.Application) error
	DeleteApplication(id uint) error
	ListDecidedByUser(userID uint, limit int) ([]application.Application, error)
	CountSuccessfulByUser(userID uint) (int64, error)
	AddDocument(d *application.Document) error
	WithTx(tx *gorm.DB) ApplicationRepo
}

type DBApplicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *DBApplicationRepo {
	return &DBApplicationRepo{db: db}
}

func (r *DBApplicationRepo) CreateApplication(a *application.Application) error {
	return r.db.Create(a).Error
}

func (r *DBApplicationRepo) GetApplicationByID(id uint) (application.Application, error) {
	var a application.Application
	err := r.db.
		Preload("FundingOption").
		Preload("Documents").
		First(&a, id).Error
	return a, err
}

func (r *DBApplicationRepo) ListApplicationsByUser(userID uint) ([]application.Application, error) {
	var apps []application.Application
	err := r.db.
		Preload("FundingOption").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) ListAllApplications(page, limit int) ([]application.Application, error) {
	var apps []application.Application
	q := r.db.Preload("FundingOption").Order("created_at DESC")
	if limit > 0 {
		q = q.Offset((page - 1) * limit).Limit(limit)
	}
	err := q.Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) UpdateApplication(a *application.Application) error {
	return r.db.Save(a).Error
}

func (r *DBApplicationRepo) DeleteApplication(id uint) error {
	return r.db.Delete(&application.Application{}, id).Error
}

// ListDecidedByUser returns the user's most recent decided applications,
// newest first. Used as evaluation history.
func (r *DBApplicationRepo) ListDecidedByUser(userID uint, limit int) ([]application.Application, error) {
	var apps []application.Application
	err := r.db.
		Preload("FundingOption").
		Where("user_id = ? AND status IN ?", userID, application.DecidedStatuses).
		Order("created_at DESC").
		Limit(limit).
		Find(&apps).Error
	return apps, err
}

func (r *DBApplicationRepo) CountSuccessfulByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&application.Application{}).
		Where("user_id = ? AND status IN ?", userID,
			[]application.Status{application.StatusApproved, application.StatusFunded}).
		Count(&count).Error
	return count, err
}

func (r *DBApplicationRepo) AddDocument(d *application.Document) error {
	return r.db.Create(d).Error
}

func (r *DBApplicationRepo) WithTx(tx *gorm.DB) ApplicationRepo {
	if tx == nil {
		return r
	}
	return &DBApplicationRepo{db: tx}
}
