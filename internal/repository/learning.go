package repository

import (
	"time"

	"github.com/femfund/femfund/internal/domain/learning"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LearningRepo interface {
	CreateResource(res *learning.Resource) error
	GetResourceByID(id uint) (learning.Resource, error)
	ListPublishedResources(category string, page, limit int) ([]learning.Resource, error)
	MarkCompleted(userID, resourceID uint) error
	ListProgressByUser(userID uint) ([]learning.Progress, error)
	WithTx(tx *gorm.DB) LearningRepo
}

type DBLearningRepo struct {
	db *gorm.DB
}

func NewLearningRepo(db *gorm.DB) *DBLearningRepo {
	return &DBLearningRepo{db: db}
}

func (r *DBLearningRepo) CreateResource(res *learning.Resource) error {
	return r.db.Create(res).Error
}

func (r *DBLearningRepo) GetResourceByID(id uint) (learning.Resource, error) {
	var res learning.Resource
	err := r.db.First(&res, id).Error
	return res, err
}

func (r *DBLearningRepo) ListPublishedResources(category string, page, limit int) ([]learning.Resource, error) {
	var resources []learning.Resource
	q := r.db.Where("is_published = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if limit > 0 {
		q = q.Offset((page - 1) * limit).Limit(limit)
	}
	err := q.Order("r_id").Find(&resources).Error
	return resources, err
}

// MarkCompleted upserts the (user, resource) progress row to completed.
func (r *DBLearningRepo) MarkCompleted(userID, resourceID uint) error {
	now := time.Now()
	progress := learning.Progress{
		UserID:      userID,
		ResourceID:  resourceID,
		Completed:   true,
		Progress:    100,
		CompletedAt: &now,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "resource_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "progress", "completed_at"}),
	}).Create(&progress).Error
}

func (r *DBLearningRepo) ListProgressByUser(userID uint) ([]learning.Progress, error) {
	var progress []learning.Progress
	err := r.db.
		Preload("Resource").
		Where("user_id = ?", userID).
		Find(&progress).Error
	return progress, err
}

func (r *DBLearningRepo) WithTx(tx *gorm.DB) LearningRepo {
	if tx == nil {
		return r
	}
	return &DBLearningRepo{db: tx}
}
