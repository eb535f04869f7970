package repository

import (
	"github.com/femfund/femfund/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(u *user.User) error
	GetUserByID(id uint) (user.User, error)
	GetUserByEmail(email string) (user.User, error)
	UpdateUser(u *user.User) error
	UpdateFinancialScore(id uint, score int) error
	DeleteUser(id uint) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", email).First(&u).Error
	return u, err
}

func (r *DBUserRepo) UpdateUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) UpdateFinancialScore(id uint, score int) error {
	return r.db.Model(&user.User{}).
		Where("u_id = ?", id).
		Update("financial_score", score).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
