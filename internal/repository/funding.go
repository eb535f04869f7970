package repository

import (
	"github.com/femfund/femfund/internal/domain/funding"
	"gorm.io/gorm"
)

type FundingRepo interface {
	CreateOption(o *funding.Option) error
	GetOptionByID(id uint) (funding.Option, error)
	ListActiveOptions(fundingType string, page, limit int) ([]funding.Option, error)
	UpdateOption(o *funding.Option) error
	DeactivateOption(id uint) error
	WithTx(tx *gorm.DB) FundingRepo
}

type DBFundingRepo struct {
	db *gorm.DB
}

func NewFundingRepo(db *gorm.DB) *DBFundingRepo {
	return &DBFundingRepo{db: db}
}

func (r *DBFundingRepo) CreateOption(o *funding.Option) error {
	return r.db.Create(o).Error
}

func (r *DBFundingRepo) GetOptionByID(id uint) (funding.Option, error) {
	var o funding.Option
	err := r.db.First(&o, id).Error
	return o, err
}

func (r *DBFundingRepo) ListActiveOptions(fundingType string, page, limit int) ([]funding.Option, error) {
	var options []funding.Option
	q := r.db.Where("is_active = ?", true)
	if fundingType != "" {
		q = q.Where("type = ?", fundingType)
	}
	if limit > 0 {
		q = q.Offset((page - 1) * limit).Limit(limit)
	}
	err := q.Order("f_id").Find(&options).Error
	return options, err
}

func (r *DBFundingRepo) UpdateOption(o *funding.Option) error {
	return r.db.Save(o).Error
}

// DeactivateOption soft-deactivates; catalog entries are never deleted.
func (r *DBFundingRepo) DeactivateOption(id uint) error {
	return r.db.Model(&funding.Option{}).
		Where("f_id = ?", id).
		Update("is_active", false).Error
}

func (r *DBFundingRepo) WithTx(tx *gorm.DB) FundingRepo {
	if tx == nil {
		return r
	}
	return &DBFundingRepo{db: tx}
}
